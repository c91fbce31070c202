package lint

import (
	"log/slog"
	"sort"
)

// Result is the outcome of analyzing one file.
type Result struct {
	Path        string
	Skipped     bool // Globally ignored; no rule ran
	Diagnostics []Diagnostic
}

// Analyzer dispatches registered rules against a file using the effective
// configuration served by an Engine.
type Analyzer struct {
	engine   *Engine
	registry *Registry
	logger   *slog.Logger
}

// NewAnalyzer creates an analyzer. A nil registry uses the default registry.
func NewAnalyzer(engine *Engine, registry *Registry, logger *slog.Logger) *Analyzer {
	if registry == nil {
		registry = defaultRegistry
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{engine: engine, registry: registry, logger: logger}
}

// Analyze runs every rule active for path against tree. Rules configured but
// not registered are skipped; registered rules not configured do not run.
// Each diagnostic is stamped with the rule's configured severity.
func (a *Analyzer) Analyze(path string, tree any) Result {
	cfg := a.engine.GetEffectiveConfig(path)
	result := Result{Path: cfg.Path, Skipped: cfg.Skipped}
	if cfg.Skipped {
		return result
	}

	for _, id := range cfg.ActiveRules() {
		rule, ok := a.registry.Get(id)
		if !ok {
			a.logger.Debug("configured rule not registered", "rule", id, "path", cfg.Path)
			continue
		}

		setting := cfg.Rules[id]
		ctx := &RuleContext{
			Path:     cfg.Path,
			RuleID:   id,
			Severity: setting.Severity,
			Options:  setting.Options,
			config:   cfg,
		}

		diags := rule.Check(tree, ctx)
		for i := range diags {
			diags[i].RuleID = id
			diags[i].Severity = setting.Severity
			if diags[i].Path == "" {
				diags[i].Path = cfg.Path
			}
		}
		result.Diagnostics = append(result.Diagnostics, diags...)
	}
	return result
}

// AnalyzeMultiple runs analysis on several files.
func (a *Analyzer) AnalyzeMultiple(files map[string]any) []Result {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		results = append(results, a.Analyze(p, files[p]))
	}
	return results
}

// HasFatal reports whether any diagnostic has a fatal severity.
func (r Result) HasFatal() bool {
	for _, d := range r.Diagnostics {
		if d.Severity.IsFatal() {
			return true
		}
	}
	return false
}
