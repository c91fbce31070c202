package lint

import (
	"log/slog"
	"sort"

	"github.com/RamilHin/my-linter/pkg/core"
	"github.com/RamilHin/my-linter/pkg/glob"
	"github.com/RamilHin/my-linter/pkg/lint/naming"
)

// EffectiveConfig is the configuration that applies to one file: every
// matching block folded in declaration order. Values are shared with the
// Store and must not be modified.
type EffectiveConfig struct {
	Path    string `json:"path" yaml:"path"`
	Skipped bool   `json:"skipped" yaml:"skipped"` // Globally ignored; nothing applies

	// Rules maps rule ID to its setting from the last matching block that set it.
	Rules map[string]RuleSetting `json:"rules" yaml:"rules"`

	// LanguageOptions come wholesale from the last matching block that set them.
	LanguageOptions map[string]any `json:"languageOptions,omitempty" yaml:"languageOptions,omitempty"`

	// Naming holds every selector of every matching block, block order first.
	Naming []naming.Selector `json:"naming,omitempty" yaml:"naming,omitempty"`

	Blocks       []int  `json:"blocks" yaml:"blocks"` // Indices of matching blocks
	StoreVersion uint64 `json:"-" yaml:"-"`
}

func newEffectiveConfig(path string) *EffectiveConfig {
	return &EffectiveConfig{
		Path:   path,
		Rules:  make(map[string]RuleSetting),
		Blocks: []int{},
	}
}

// apply folds one block into the config. Rule settings replace earlier ones
// per ID without merging options.
func (c *EffectiveConfig) apply(b *Block) {
	for id, rs := range b.Rules {
		c.Rules[id] = rs
	}
	if b.LanguageOptions != nil {
		c.LanguageOptions = b.LanguageOptions
	}
	c.Naming = append(c.Naming, b.Naming...)
	c.Blocks = append(c.Blocks, b.Index)
}

// Rule returns the setting for a rule ID, if any block set it.
func (c *EffectiveConfig) Rule(id string) (RuleSetting, bool) {
	rs, ok := c.Rules[id]
	return rs, ok
}

// Severity returns the severity of a rule, SeverityOff when unset.
func (c *EffectiveConfig) Severity(id string) core.Severity {
	return c.Rules[id].Severity
}

// ActiveRules returns the IDs of rules not turned off, sorted.
func (c *EffectiveConfig) ActiveRules() []string {
	var ids []string
	for id, rs := range c.Rules {
		if rs.Severity.IsActive() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// NamingConstraint resolves the naming constraint for a symbol in this file.
func (c *EffectiveConfig) NamingConstraint(kind naming.Kind, mods naming.Modifiers) (*naming.Constraint, bool) {
	if c.Skipped {
		return nil, false
	}
	return naming.Resolve(c.Naming, kind, mods)
}

// Fold merges blocks in the order given, regardless of their file patterns.
// Resolve uses it after filtering; it is exported so callers can fold
// pre-filtered batches.
func Fold(path string, blocks ...*Block) *EffectiveConfig {
	c := newEffectiveConfig(path)
	for _, b := range blocks {
		c.apply(b)
	}
	return c
}

// Merger computes effective configurations from one Store.
type Merger struct {
	store  *Store
	logger *slog.Logger
}

// NewMerger creates a merger over store. A nil logger discards output.
func NewMerger(store *Store, logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Merger{store: store, logger: logger}
}

// Resolve returns the effective configuration for path. Globally ignored
// paths return a Skipped config with no rules; blocks are not consulted.
func (m *Merger) Resolve(path string) *EffectiveConfig {
	path = glob.Normalize(path)
	c := newEffectiveConfig(path)
	c.StoreVersion = m.store.version

	if m.store.ignore.IsIgnored(path) {
		m.logger.Debug("path ignored", "path", path)
		c.Skipped = true
		return c
	}

	for i := range m.store.blocks {
		b := &m.store.blocks[i]
		if !b.Matches(path) {
			continue
		}
		m.logger.Debug("block matched", "path", path, "block", b.Label())
		c.apply(b)
	}
	return c
}
