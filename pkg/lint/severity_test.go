package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RamilHin/my-linter/pkg/core"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		wantSev  core.Severity
		wantOpts []any
	}{
		{"bare off", "off", core.SeverityOff, nil},
		{"bare warn", "warn", core.SeverityWarn, nil},
		{"bare error", "error", core.SeverityError, nil},
		{"upper case", "ERROR", core.SeverityError, nil},
		{"numeric int", 2, core.SeverityError, nil},
		{"numeric int64", int64(1), core.SeverityWarn, nil},
		{"numeric float", float64(0), core.SeverityOff, nil},
		{"severity value", core.SeverityWarn, core.SeverityWarn, nil},
		{"list without options", []any{"error"}, core.SeverityError, nil},
		{"list with options", []any{"error", "always"}, core.SeverityError, []any{"always"}},
		{
			name:     "list with object option",
			raw:      []any{"warn", map[string]any{"max": 4}},
			wantSev:  core.SeverityWarn,
			wantOpts: []any{map[string]any{"max": 4}},
		},
		{"numeric list", []any{1, "never"}, core.SeverityWarn, []any{"never"}},
		{"string list", []string{"error", "always"}, core.SeverityError, []any{"always"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSev, rs.Severity)
			assert.Equal(t, tt.wantOpts, rs.Options)
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"unknown token", "fatal"},
		{"warning alias", "warning"},
		{"numeric string", "2"},
		{"numeric string list head", []any{"1", "x"}},
		{"out of range", 3},
		{"negative", -1},
		{"fractional", 1.5},
		{"empty list", []any{}},
		{"bad list head", []any{"loud", "x"}},
		{"object", map[string]any{"severity": "error"}},
		{"nil", nil},
		{"bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			require.Error(t, err)

			var ce *core.ConfigError
			assert.ErrorAs(t, err, &ce)
		})
	}
}

func TestNormalize_OptionsAreCopied(t *testing.T) {
	raw := []any{"error", "a"}
	rs, err := Normalize(raw)
	require.NoError(t, err)

	raw[1] = "b"
	assert.Equal(t, []any{"a"}, rs.Options)
}
