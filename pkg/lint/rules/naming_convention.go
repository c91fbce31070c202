package rules

import (
	"github.com/RamilHin/my-linter/pkg/lint"
)

func init() {
	lint.Register(lint.WrapRuleDef(NamingConvention))
	lint.Register(lint.WrapRuleDef(TypeScriptNamingConvention))
}

// NamingConvention checks declared names against the naming selectors in
// effect for the file.
var NamingConvention = lint.RuleDef{
	ID:          "naming-convention",
	Description: "Enforce naming conventions for declared symbols.",
	Check:       checkNamingConvention,
}

// TypeScriptNamingConvention is NamingConvention under the rule ID used by
// typescript-eslint configs.
var TypeScriptNamingConvention = lint.RuleDef{
	ID:          "@typescript-eslint/naming-convention",
	Description: NamingConvention.Description,
	Check:       checkNamingConvention,
}

func checkNamingConvention(tree any, ctx *lint.RuleContext) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	for _, decl := range declarationsOf(tree) {
		constraint, ok := ctx.Naming(decl.Kind, decl.Modifiers)
		if !ok {
			continue
		}
		for _, v := range constraint.Check(decl.Name) {
			diagnostics = append(diagnostics, ctx.Report(decl.Pos, v.Message))
		}
	}

	return diagnostics
}
