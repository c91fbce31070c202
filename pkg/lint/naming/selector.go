package naming

import (
	"fmt"
	"strings"

	"github.com/RamilHin/my-linter/pkg/core"
)

// Position locates a selector by the block that declared it and its index
// within that block. Later positions take precedence on ties.
type Position struct {
	Block int `json:"block" yaml:"block"`
	Index int `json:"index" yaml:"index"`
}

// After reports whether p was declared later than other.
func (p Position) After(other Position) bool {
	if p.Block != other.Block {
		return p.Block > other.Block
	}
	return p.Index > other.Index
}

func (p Position) String() string {
	return fmt.Sprintf("block %d, selector %d", p.Block, p.Index)
}

// Selector is one naming rule: which symbols it targets and what it requires
// of their names.
type Selector struct {
	Kind               Kind       `json:"selector" yaml:"selector"`
	Modifiers          Modifiers  `json:"modifiers" yaml:"modifiers"`
	Format             []Format   `json:"format" yaml:"format"` // nil means no format constraint
	LeadingUnderscore  Underscore `json:"leadingUnderscore" yaml:"leadingUnderscore"`
	TrailingUnderscore Underscore `json:"trailingUnderscore" yaml:"trailingUnderscore"`
	Position           Position   `json:"position" yaml:"position"`
}

// Specificity is the number of modifiers the selector requires.
func (s Selector) Specificity() int {
	return s.Modifiers.Count()
}

// Applies reports whether the selector targets a symbol of the given kind and
// modifiers.
func (s Selector) Applies(kind Kind, mods Modifiers) bool {
	return s.Kind == kind && s.Modifiers.SubsetOf(mods)
}

// Constraint returns the requirements this selector places on names.
func (s Selector) Constraint() *Constraint {
	c := &Constraint{
		LeadingUnderscore:  s.LeadingUnderscore,
		TrailingUnderscore: s.TrailingUnderscore,
		Source:             s.Position,
		Kind:               s.Kind,
		Modifiers:          s.Modifiers,
	}
	if s.Format != nil {
		c.Format = append([]Format{}, s.Format...)
	}
	return c
}

func (s Selector) String() string {
	return fmt.Sprintf("%s%s", s.Kind, s.Modifiers)
}

// Resolve picks the constraint for a symbol of the given kind and modifiers:
// the applicable selector with the highest specificity, the latest declared on
// ties. It returns false when no selector applies.
func Resolve(selectors []Selector, kind Kind, mods Modifiers) (*Constraint, bool) {
	best := -1
	for i, s := range selectors {
		if !s.Applies(kind, mods) {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		cur := selectors[best]
		switch {
		case s.Specificity() > cur.Specificity():
			best = i
		case s.Specificity() == cur.Specificity() && !cur.Position.After(s.Position):
			best = i
		}
	}
	if best < 0 {
		return nil, false
	}
	return selectors[best].Constraint(), true
}

// Validate rejects selector lists in which two selectors share a position.
// Resolution breaks specificity ties by position, so a shared one would make
// the winner depend on list order.
func Validate(selectors []Selector) error {
	seen := make(map[Position]Selector, len(selectors))
	for _, s := range selectors {
		if prev, dup := seen[s.Position]; dup {
			return &core.ConfigError{
				Block:   s.Position.Block,
				Field:   fmt.Sprintf("naming[%d]", s.Position.Index),
				Message: fmt.Sprintf("selectors %s and %s declared at the same position", prev, s),
			}
		}
		seen[s.Position] = s
	}
	return nil
}

// Constraint is the resolved naming requirement for one symbol.
type Constraint struct {
	Format             []Format   `json:"format" yaml:"format"`
	LeadingUnderscore  Underscore `json:"leadingUnderscore" yaml:"leadingUnderscore"`
	TrailingUnderscore Underscore `json:"trailingUnderscore" yaml:"trailingUnderscore"`

	// Source identifies the selector that produced the constraint.
	Source    Position  `json:"source" yaml:"source"`
	Kind      Kind      `json:"selector" yaml:"selector"`
	Modifiers Modifiers `json:"modifiers" yaml:"modifiers"`
}

// Violation describes why a name does not satisfy a Constraint.
type Violation struct {
	Check   string // "leadingUnderscore", "trailingUnderscore" or "format"
	Message string
}

// Check validates name against the constraint. Underscore policies are
// checked first; the remaining name must then match at least one format.
func (c *Constraint) Check(name string) []Violation {
	if c == nil {
		return nil
	}
	var violations []Violation

	stem, ok := checkAffix(name, "_", c.LeadingUnderscore, strings.HasPrefix, strings.TrimPrefix)
	if !ok {
		violations = append(violations, Violation{
			Check:   "leadingUnderscore",
			Message: underscoreMessage(name, "leading", c.LeadingUnderscore),
		})
	}
	stem, ok = checkAffix(stem, "_", c.TrailingUnderscore, strings.HasSuffix, strings.TrimSuffix)
	if !ok {
		violations = append(violations, Violation{
			Check:   "trailingUnderscore",
			Message: underscoreMessage(name, "trailing", c.TrailingUnderscore),
		})
	}

	if c.Format == nil || len(violations) > 0 {
		return violations
	}
	for _, f := range c.Format {
		if f.Matches(stem) {
			return nil
		}
	}
	names := make([]string, len(c.Format))
	for i, f := range c.Format {
		names[i] = f.String()
	}
	return append(violations, Violation{
		Check:   "format",
		Message: fmt.Sprintf("%s %q must match one of the following formats: %s", c.Kind, name, strings.Join(names, ", ")),
	})
}

// checkAffix applies one underscore policy and returns the name with a
// permitted underscore removed.
func checkAffix(name, affix string, policy Underscore, has func(string, string) bool, trim func(string, string) string) (string, bool) {
	present := has(name, affix)
	switch policy {
	case UnderscoreRequire:
		if !present {
			return name, false
		}
		return trim(name, affix), true
	case UnderscoreForbid:
		return name, !present
	default:
		return trim(name, affix), true
	}
}

func underscoreMessage(name, side string, policy Underscore) string {
	if policy == UnderscoreRequire {
		return fmt.Sprintf("%q must have a %s underscore", name, side)
	}
	return fmt.Sprintf("%q must not have a %s underscore", name, side)
}
