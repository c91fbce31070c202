package lint

import "fmt"

// Position is a location in a source file. Lines and columns are 1-based;
// the zero value means "unknown".
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string   `json:"ruleId"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Path     string   `json:"path"`
	Pos      Position `json:"pos"`
	EndPos   Position `json:"endPos"`          // Optional: end of the problematic range
	Fixes    []Fix    `json:"fixes,omitempty"` // Optional: suggested fixes
}

// Fix represents a suggested code fix.
type Fix struct {
	Description string     `json:"description"`
	TextEdits   []TextEdit `json:"textEdits"`
}

// TextEdit represents a text replacement.
type TextEdit struct {
	Pos     Position `json:"pos"`
	EndPos  Position `json:"endPos"`
	NewText string   `json:"newText"`
}
