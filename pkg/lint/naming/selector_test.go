package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RamilHin/my-linter/pkg/core"
)

func sel(kind Kind, pos Position, format Format, mods ...Modifier) Selector {
	return Selector{
		Kind:      kind,
		Modifiers: NewModifiers(mods...),
		Format:    []Format{format},
		Position:  pos,
	}
}

func TestResolve_MoreSpecificWins(t *testing.T) {
	selectors := []Selector{
		sel(KindClassProperty, Position{0, 0}, FormatCamelCase, ModPublic),
		sel(KindClassProperty, Position{0, 1}, FormatUpperCase, ModPublic, ModReadonly),
	}

	c, ok := Resolve(selectors, KindClassProperty, NewModifiers(ModPublic, ModReadonly))
	require.True(t, ok)
	assert.Equal(t, []Format{FormatUpperCase}, c.Format)
	assert.Equal(t, Position{0, 1}, c.Source)

	// Specificity beats declaration order.
	reversed := []Selector{selectors[1], selectors[0]}
	reversed[0].Position, reversed[1].Position = Position{0, 0}, Position{0, 1}
	c, ok = Resolve(reversed, KindClassProperty, NewModifiers(ModPublic, ModReadonly))
	require.True(t, ok)
	assert.Equal(t, []Format{FormatUpperCase}, c.Format)
}

func TestResolve_LastDeclaredBreaksTies(t *testing.T) {
	selectors := []Selector{
		sel(KindMethod, Position{0, 0}, FormatCamelCase, ModPublic),
		sel(KindMethod, Position{0, 1}, FormatPascalCase, ModPublic),
	}
	c, ok := Resolve(selectors, KindMethod, NewModifiers(ModPublic))
	require.True(t, ok)
	assert.Equal(t, []Format{FormatPascalCase}, c.Format)

	t.Run("block index outranks within-block index", func(t *testing.T) {
		selectors := []Selector{
			sel(KindMethod, Position{1, 0}, FormatSnakeCase, ModPrivate),
			sel(KindMethod, Position{0, 5}, FormatCamelCase, ModPrivate),
		}
		c, ok := Resolve(selectors, KindMethod, NewModifiers(ModPrivate))
		require.True(t, ok)
		assert.Equal(t, []Format{FormatSnakeCase}, c.Format)
	})
}

func TestResolve_Candidates(t *testing.T) {
	selectors := []Selector{
		sel(KindMethod, Position{0, 0}, FormatPascalCase, ModPublic),
		sel(KindMethod, Position{0, 1}, FormatCamelCase, ModPrivate),
		sel(KindAccessor, Position{0, 2}, FormatPascalCase),
	}

	tests := []struct {
		name   string
		kind   Kind
		mods   Modifiers
		want   *Format
		wantOK bool
	}{
		{"exact kind and modifier", KindMethod, NewModifiers(ModPrivate), ptr(FormatCamelCase), true},
		{"extra symbol modifiers still match", KindMethod, NewModifiers(ModPublic, ModStatic), ptr(FormatPascalCase), true},
		{"selector needs modifier symbol lacks", KindMethod, NewModifiers(ModProtected), nil, false},
		{"no modifiers selector matches any", KindAccessor, NewModifiers(ModPrivate, ModStatic), ptr(FormatPascalCase), true},
		{"kind must match exactly", KindClassProperty, NewModifiers(ModPublic), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Resolve(selectors, tt.kind, tt.mods)
			assert.Equal(t, tt.wantOK, ok)
			if tt.want == nil {
				assert.Nil(t, c)
				return
			}
			require.NotNil(t, c)
			assert.Equal(t, []Format{*tt.want}, c.Format)
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestResolve_Deterministic(t *testing.T) {
	selectors := []Selector{
		sel(KindClassProperty, Position{0, 0}, FormatCamelCase, ModPrivate),
		sel(KindClassProperty, Position{1, 0}, FormatSnakeCase, ModPrivate),
		sel(KindClassProperty, Position{1, 1}, FormatUpperCase, ModStatic),
	}
	first, _ := Resolve(selectors, KindClassProperty, NewModifiers(ModPrivate, ModStatic))
	for i := 0; i < 10; i++ {
		again, _ := Resolve(selectors, KindClassProperty, NewModifiers(ModPrivate, ModStatic))
		assert.Equal(t, first, again)
	}
	assert.Equal(t, []Format{FormatUpperCase}, first.Format)
}

func TestValidate(t *testing.T) {
	ok := []Selector{
		sel(KindMethod, Position{0, 0}, FormatCamelCase, ModPublic),
		sel(KindMethod, Position{0, 1}, FormatCamelCase, ModPublic),
		sel(KindMethod, Position{1, 0}, FormatCamelCase, ModPublic),
	}
	require.NoError(t, Validate(ok))

	tests := []struct {
		name string
		sels []Selector
		want string
	}{
		{
			name: "same modifiers",
			sels: []Selector{
				sel(KindMethod, Position{0, 0}, FormatCamelCase, ModPublic),
				sel(KindMethod, Position{0, 0}, FormatPascalCase, ModPublic),
			},
			want: "method{public}",
		},
		{
			name: "different modifiers of equal specificity",
			sels: []Selector{
				sel(KindClassProperty, Position{0, 0}, FormatCamelCase, ModStatic),
				sel(KindClassProperty, Position{0, 0}, FormatUpperCase, ModReadonly),
			},
			want: "classProperty{readonly}",
		},
		{
			name: "different kinds",
			sels: []Selector{
				sel(KindMethod, Position{2, 1}, FormatCamelCase),
				sel(KindAccessor, Position{2, 1}, FormatCamelCase),
			},
			want: "accessor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.sels)
			var cfgErr *core.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.sels[1].Position.Block, cfgErr.Block)
			assert.Contains(t, cfgErr.Message, tt.want)
		})
	}
}

func TestModifiers(t *testing.T) {
	pr := NewModifiers(ModPublic, ModReadonly)
	assert.Equal(t, 2, pr.Count())
	assert.True(t, pr.Has(ModReadonly))
	assert.False(t, pr.Has(ModStatic))
	assert.True(t, NewModifiers(ModPublic).SubsetOf(pr))
	assert.True(t, Modifiers(0).SubsetOf(pr))
	assert.False(t, NewModifiers(ModStatic).SubsetOf(pr))
	assert.Equal(t, "{public,readonly}", pr.String())

	parsed, err := ParseModifiers([]string{"readonly", "public", "public"})
	require.NoError(t, err)
	assert.Equal(t, pr, parsed)

	_, err = ParseModifiers([]string{"abstract"})
	var cfgErr *core.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("objectLiteralMethod")
	require.NoError(t, err)
	assert.Equal(t, KindObjectLiteralMethod, k)
	assert.Equal(t, "objectLiteralMethod", k.String())

	_, err = ParseKind("Method")
	assert.Error(t, err)
	assert.Contains(t, KindNames(), "classProperty")
}
