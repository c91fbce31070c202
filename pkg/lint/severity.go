package lint

import (
	"fmt"

	"github.com/RamilHin/my-linter/pkg/core"
)

// Normalize converts a raw rule value from config input into a RuleSetting.
//
// Accepted forms:
//
//	"warn"                      bare severity token
//	2                           numeric level (0 off, 1 warn, 2 error)
//	["error", "always", {...}]  severity followed by rule options
//
// Anything else, including unknown tokens, yields a *core.ConfigError.
func Normalize(raw any) (RuleSetting, error) {
	switch v := raw.(type) {
	case []any:
		if len(v) == 0 {
			return RuleSetting{}, core.NewConfigError("", "rule setting list must start with a severity")
		}
		sev, err := parseSeverityValue(v[0])
		if err != nil {
			return RuleSetting{}, err
		}
		var opts []any
		if len(v) > 1 {
			opts = append([]any{}, v[1:]...)
		}
		return RuleSetting{Severity: sev, Options: opts}, nil
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return Normalize(items)
	default:
		sev, err := parseSeverityValue(raw)
		if err != nil {
			return RuleSetting{}, err
		}
		return RuleSetting{Severity: sev}, nil
	}
}

func parseSeverityValue(raw any) (core.Severity, error) {
	switch v := raw.(type) {
	case core.Severity:
		if _, ok := core.SeverityFromLevel(int(v)); ok {
			return v, nil
		}
	case string:
		if sev, ok := core.ParseSeverity(v); ok {
			return sev, nil
		}
	case int:
		if sev, ok := core.SeverityFromLevel(v); ok {
			return sev, nil
		}
	case int64:
		if sev, ok := core.SeverityFromLevel(int(v)); ok {
			return sev, nil
		}
	case float64:
		if v == float64(int(v)) {
			if sev, ok := core.SeverityFromLevel(int(v)); ok {
				return sev, nil
			}
		}
	}
	return core.SeverityOff, core.NewConfigError("", "unknown severity %s (valid: off, warn, error or 0, 1, 2)", describe(raw))
}

func describe(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v (%T)", v, v)
}
