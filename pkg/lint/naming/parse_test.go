package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RamilHin/my-linter/pkg/core"
)

func TestParseSelector(t *testing.T) {
	raw := map[string]any{
		"selector":          "classProperty",
		"modifiers":         []any{"private"},
		"format":            []any{"camelCase"},
		"leadingUnderscore": "require",
	}
	s, err := ParseSelector(raw, Position{Block: 2, Index: 3})
	require.NoError(t, err)

	assert.Equal(t, KindClassProperty, s.Kind)
	assert.Equal(t, NewModifiers(ModPrivate), s.Modifiers)
	assert.Equal(t, []Format{FormatCamelCase}, s.Format)
	assert.Equal(t, UnderscoreRequire, s.LeadingUnderscore)
	assert.Equal(t, UnderscoreAllow, s.TrailingUnderscore)
	assert.Equal(t, Position{Block: 2, Index: 3}, s.Position)
}

func TestParseSelector_NullFormat(t *testing.T) {
	s, err := ParseSelector(map[string]any{"selector": "accessor", "format": nil}, Position{})
	require.NoError(t, err)
	assert.Nil(t, s.Format)

	s, err = ParseSelector(map[string]any{"selector": "accessor"}, Position{})
	require.NoError(t, err)
	assert.Nil(t, s.Format)
}

func TestParseSelector_Errors(t *testing.T) {
	tests := []struct {
		name  string
		raw   any
		field string
	}{
		{"not an object", "method", "naming[0]"},
		{"missing selector", map[string]any{"format": []any{"camelCase"}}, "naming[0].selector"},
		{"unknown selector", map[string]any{"selector": "widget"}, "naming[0].selector"},
		{"unknown modifier", map[string]any{"selector": "method", "modifiers": []any{"abstract"}}, "naming[0].modifiers"},
		{"unknown format", map[string]any{"selector": "method", "format": []any{"kebab"}}, "naming[0].format"},
		{"unknown policy", map[string]any{"selector": "method", "leadingUnderscore": "maybe"}, "naming[0].leadingUnderscore"},
		{"unknown key", map[string]any{"selector": "method", "prefix": []any{"is"}}, "naming[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSelector(tt.raw, Position{Block: 1})
			var cfgErr *core.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, 1, cfgErr.Block)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestParseSelectors_Numbering(t *testing.T) {
	sels, err := ParseSelectors([]any{
		map[string]any{"selector": "method"},
		map[string]any{"selector": "accessor"},
	}, 4, 2)
	require.NoError(t, err)
	require.Len(t, sels, 2)
	assert.Equal(t, Position{Block: 4, Index: 2}, sels[0].Position)
	assert.Equal(t, Position{Block: 4, Index: 3}, sels[1].Position)
}
