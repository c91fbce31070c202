package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Matches(t *testing.T) {
	tests := []struct {
		format Format
		name   string
		want   bool
	}{
		{FormatCamelCase, "fooBar", true},
		{FormatCamelCase, "FooBar", false},
		{FormatCamelCase, "foo_bar", false},
		{FormatCamelCase, "fooHTTP", true},
		{FormatStrictCamelCase, "fooHttp", true},
		{FormatStrictCamelCase, "fooHTTP", false},
		{FormatPascalCase, "FooBar", true},
		{FormatPascalCase, "fooBar", false},
		{FormatPascalCase, "HTTPServer", true},
		{FormatStrictPascalCase, "HTTPServer", false},
		{FormatStrictPascalCase, "HttpServer", true},
		{FormatSnakeCase, "foo_bar", true},
		{FormatSnakeCase, "foo__bar", false},
		{FormatSnakeCase, "fooBar", false},
		{FormatUpperCase, "MAX_SIZE", true},
		{FormatUpperCase, "MAX_", false},
		{FormatUpperCase, "Max", false},
		{FormatCamelCase, "", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.format.Matches(tt.name), "%s.Matches(%q)", tt.format, tt.name)
	}
}

func TestParseFormat(t *testing.T) {
	for i, name := range formatNames {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(i), f)
	}
	_, err := ParseFormat("kebab-case")
	assert.Error(t, err)
}

func TestConstraint_Check(t *testing.T) {
	tests := []struct {
		name       string
		constraint Constraint
		symbol     string
		wantChecks []string
	}{
		{
			name:       "public method PascalCase ok",
			constraint: Constraint{Kind: KindMethod, Format: []Format{FormatPascalCase}},
			symbol:     "GetValue",
		},
		{
			name:       "public method camelCase rejected",
			constraint: Constraint{Kind: KindMethod, Format: []Format{FormatPascalCase}},
			symbol:     "getValue",
			wantChecks: []string{"format"},
		},
		{
			name:       "private property requires underscore",
			constraint: Constraint{Kind: KindClassProperty, Format: []Format{FormatCamelCase}, LeadingUnderscore: UnderscoreRequire},
			symbol:     "_count",
		},
		{
			name:       "private property missing underscore",
			constraint: Constraint{Kind: KindClassProperty, Format: []Format{FormatCamelCase}, LeadingUnderscore: UnderscoreRequire},
			symbol:     "count",
			wantChecks: []string{"leadingUnderscore"},
		},
		{
			name:       "forbidden leading underscore",
			constraint: Constraint{Kind: KindMethod, Format: []Format{FormatCamelCase}, LeadingUnderscore: UnderscoreForbid},
			symbol:     "_helper",
			wantChecks: []string{"leadingUnderscore"},
		},
		{
			name:       "allowed underscore stripped before format",
			constraint: Constraint{Kind: KindVariable, Format: []Format{FormatCamelCase}},
			symbol:     "_unused",
		},
		{
			name:       "trailing underscore forbidden",
			constraint: Constraint{Kind: KindVariable, TrailingUnderscore: UnderscoreForbid},
			symbol:     "value_",
			wantChecks: []string{"trailingUnderscore"},
		},
		{
			name:       "nil format means no format constraint",
			constraint: Constraint{Kind: KindVariable},
			symbol:     "Any_Thing_goes",
		},
		{
			name:       "any listed format is enough",
			constraint: Constraint{Kind: KindVariable, Format: []Format{FormatCamelCase, FormatUpperCase}},
			symbol:     "MAX_SIZE",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.constraint.Check(tt.symbol)
			var checks []string
			for _, v := range got {
				checks = append(checks, v.Check)
				assert.NotEmpty(t, v.Message)
			}
			assert.Equal(t, tt.wantChecks, checks)
		})
	}

	var nilConstraint *Constraint
	assert.Nil(t, nilConstraint.Check("anything"))
}
