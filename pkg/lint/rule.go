package lint

import (
	"github.com/RamilHin/my-linter/pkg/core"
	"github.com/RamilHin/my-linter/pkg/lint/naming"
)

// Severity is re-exported so rule packages need not import pkg/core.
type Severity = core.Severity

// Rule is implemented by analysis rules. Rule bodies live outside this
// module; the engine only decides whether and how a rule runs for a file.
type Rule interface {
	// ID returns the identifier used in config, e.g. "curly" or
	// "@typescript-eslint/naming-convention".
	ID() string

	// Description returns a human-readable description.
	Description() string

	// Check analyzes a syntax tree and returns diagnostics. The tree is
	// produced by an external parser and passed through untouched.
	Check(tree any, ctx *RuleContext) []Diagnostic
}

// RuleContext carries everything a rule may consult while checking one file.
type RuleContext struct {
	Path     string
	RuleID   string
	Severity Severity
	Options  []any

	config *EffectiveConfig
}

// LanguageOptions returns the language options in effect for the file.
func (c *RuleContext) LanguageOptions() map[string]any {
	return c.config.LanguageOptions
}

// Naming resolves the naming constraint for a symbol in the current file.
func (c *RuleContext) Naming(kind naming.Kind, mods naming.Modifiers) (*naming.Constraint, bool) {
	return c.config.NamingConstraint(kind, mods)
}

// Report builds a diagnostic for the current rule and file. The analyzer
// stamps the configured severity afterwards.
func (c *RuleContext) Report(pos Position, message string) Diagnostic {
	return Diagnostic{
		RuleID:   c.RuleID,
		Severity: c.Severity,
		Message:  message,
		Path:     c.Path,
		Pos:      pos,
	}
}

// RuleDef is a data-driven rule definition for rules that need no state.
type RuleDef struct {
	ID          string    // Identifier used in config
	Description string    // Human-readable description
	Check       CheckFunc // The check function
}

// CheckFunc analyzes a syntax tree and returns diagnostics.
type CheckFunc func(tree any, ctx *RuleContext) []Diagnostic

// wrappedRuleDef wraps a RuleDef to implement Rule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the Rule interface.
func WrapRuleDef(def RuleDef) Rule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string          { return w.def.ID }
func (w *wrappedRuleDef) Description() string { return w.def.Description }

func (w *wrappedRuleDef) Check(tree any, ctx *RuleContext) []Diagnostic {
	if w.def.Check == nil {
		return nil
	}
	return w.def.Check(tree, ctx)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}
