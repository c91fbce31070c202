package rules

import (
	"github.com/RamilHin/my-linter/pkg/lint"
	"github.com/RamilHin/my-linter/pkg/lint/naming"
)

// Declaration is one named symbol declared in a file.
type Declaration struct {
	Name      string
	Kind      naming.Kind
	Modifiers naming.Modifiers
	Pos       lint.Position
}

// Declarations is the tree type understood by the built-in rules.
type Declarations []Declaration

// declarationsOf extracts declarations from a tree, accepting both the slice
// and a pointer to it.
func declarationsOf(tree any) Declarations {
	switch t := tree.(type) {
	case Declarations:
		return t
	case *Declarations:
		if t != nil {
			return *t
		}
	case []Declaration:
		return t
	}
	return nil
}
