package naming

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/RamilHin/my-linter/pkg/core"
)

// rawSelector is the config-file shape of a selector.
type rawSelector struct {
	Selector           string   `mapstructure:"selector"`
	Modifiers          []string `mapstructure:"modifiers"`
	Format             []string `mapstructure:"format"`
	LeadingUnderscore  string   `mapstructure:"leadingUnderscore"`
	TrailingUnderscore string   `mapstructure:"trailingUnderscore"`
}

// ParseSelector decodes one selector object from config input. Unknown keys,
// unknown selector kinds, modifiers, formats or policies yield a
// *core.ConfigError. A missing or null "format" means no format constraint.
func ParseSelector(raw any, pos Position) (Selector, error) {
	fail := func(field, format string, args ...any) error {
		path := fmt.Sprintf("naming[%d]", pos.Index)
		if field != "" {
			path += "." + field
		}
		return &core.ConfigError{
			Block:   pos.Block,
			Field:   path,
			Message: fmt.Sprintf(format, args...),
		}
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return Selector{}, fail("", "selector must be an object, got %T", raw)
	}

	var rs rawSelector
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &rs,
		ErrorUnused: true,
	})
	if err != nil {
		return Selector{}, err
	}
	if err := dec.Decode(m); err != nil {
		return Selector{}, fail("", "%v", err)
	}

	sel := Selector{Position: pos}
	if rs.Selector == "" {
		return Selector{}, fail("selector", "selector is required")
	}
	if sel.Kind, err = ParseKind(rs.Selector); err != nil {
		return Selector{}, fail("selector", "%s", reason(err))
	}
	if sel.Modifiers, err = ParseModifiers(rs.Modifiers); err != nil {
		return Selector{}, fail("modifiers", "%s", reason(err))
	}
	if v, present := m["format"]; present && v != nil {
		sel.Format = make([]Format, 0, len(rs.Format))
		for _, name := range rs.Format {
			f, err := ParseFormat(name)
			if err != nil {
				return Selector{}, fail("format", "%s", reason(err))
			}
			sel.Format = append(sel.Format, f)
		}
	}
	if sel.LeadingUnderscore, err = ParseUnderscore(rs.LeadingUnderscore); err != nil {
		return Selector{}, fail("leadingUnderscore", "%s", reason(err))
	}
	if sel.TrailingUnderscore, err = ParseUnderscore(rs.TrailingUnderscore); err != nil {
		return Selector{}, fail("trailingUnderscore", "%s", reason(err))
	}
	return sel, nil
}

// ParseSelectors decodes a list of selector objects declared in one block,
// numbering them from startIndex.
func ParseSelectors(raw []any, block, startIndex int) ([]Selector, error) {
	out := make([]Selector, 0, len(raw))
	for i, r := range raw {
		s, err := ParseSelector(r, Position{Block: block, Index: startIndex + i})
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func reason(err error) string {
	var ce *core.ConfigError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}
