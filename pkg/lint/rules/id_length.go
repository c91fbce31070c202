package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/RamilHin/my-linter/pkg/lint"
)

func init() {
	lint.Register(lint.WrapRuleDef(IDLength))
}

// IDLength enforces minimum and maximum identifier lengths.
//
// Options: [{"min": 2, "max": 40, "exceptions": ["i", "_"]}]
var IDLength = lint.RuleDef{
	ID:          "id-length",
	Description: "Identifiers should be between min and max characters.",
	Check:       checkIDLength,
}

const (
	defaultMinLength = 2
	defaultMaxLength = 0 // no limit
)

func checkIDLength(tree any, ctx *lint.RuleContext) []lint.Diagnostic {
	minLen := lint.GetIntOption(ctx.Options, -1, "min", defaultMinLength)
	maxLen := lint.GetIntOption(ctx.Options, -1, "max", defaultMaxLength)

	exceptions := make(map[string]bool)
	for _, e := range lint.GetStringSliceOption(ctx.Options, "exceptions", nil) {
		exceptions[e] = true
	}

	var diagnostics []lint.Diagnostic
	for _, decl := range declarationsOf(tree) {
		if exceptions[decl.Name] {
			continue
		}
		n := utf8.RuneCountInString(decl.Name)
		switch {
		case n < minLen:
			diagnostics = append(diagnostics, ctx.Report(decl.Pos,
				fmt.Sprintf("identifier '%s' is too short (< %d)", decl.Name, minLen)))
		case maxLen > 0 && n > maxLen:
			diagnostics = append(diagnostics, ctx.Report(decl.Pos,
				fmt.Sprintf("identifier '%s' is too long (> %d)", decl.Name, maxLen)))
		}
	}
	return diagnostics
}
