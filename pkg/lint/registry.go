package lint

import (
	"sort"
	"sync"

	"github.com/RamilHin/my-linter/pkg/core"
)

// defaultRegistry holds rules registered from init() functions.
var defaultRegistry = NewRegistry()

// Registry stores rule implementations keyed by ID. Registration is the
// binding between config rule IDs and code; the engine never requires it.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// DefaultRegistry returns the package-level registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a rule to the default registry.
// Call this from init() functions in rule packages.
func Register(rule Rule) {
	defaultRegistry.Register(rule)
}

// Register adds or replaces a rule.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.ID()] = rule
}

// Get returns a rule by its ID.
func (r *Registry) Get(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// All returns all registered rules sorted by ID.
func (r *Registry) All() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })
	return rules
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Clear removes all registered rules. Used for testing.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = make(map[string]Rule)
}

// Infos describes every registered rule, with the severity configured for
// the given effective config when one is passed.
func (r *Registry) Infos(cfg *EffectiveConfig) []core.RuleInfo {
	rules := r.All()
	infos := make([]core.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		info := core.RuleInfo{ID: rule.ID(), Description: rule.Description()}
		if cfg != nil {
			if rs, ok := cfg.Rule(rule.ID()); ok {
				sev := rs.Severity
				info.Configured = &sev
			}
		}
		infos = append(infos, info)
	}
	return infos
}
