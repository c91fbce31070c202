package lint

// Rule options arrive as the positional list that follows the severity in
// config, e.g. ["error", "always", {"max": 4}]. Strings and numbers are
// usually positional; objects carry named settings. These helpers read both
// forms and tolerate the numeric types produced by the YAML, TOML and JSON
// decoders.

// Option returns the positional option at index i.
func Option(opts []any, i int) (any, bool) {
	if i < 0 || i >= len(opts) {
		return nil, false
	}
	return opts[i], true
}

// ObjectOption returns the first object among the options, or nil.
func ObjectOption(opts []any) map[string]any {
	for _, o := range opts {
		if m, ok := o.(map[string]any); ok {
			return m
		}
	}
	return nil
}

// GetOption extracts a typed named option from the first object option.
func GetOption[T any](opts []any, key string, defaultVal T) T {
	v, ok := ObjectOption(opts)[key]
	if !ok {
		return defaultVal
	}
	if typed, ok := v.(T); ok {
		return typed
	}
	return defaultVal
}

// GetStringOption returns the positional string option at index i.
// Positional strings such as "always" or "never" are common rule modes.
func GetStringOption(opts []any, i int, defaultVal string) string {
	v, ok := Option(opts, i)
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// GetIntOption returns an integer option. It reads the positional option at
// index i when that is a number, otherwise the named key from the object
// option. Decoders yield int, int64 or float64 depending on the format.
func GetIntOption(opts []any, i int, key string, defaultVal int) int {
	if v, ok := Option(opts, i); ok {
		if n, ok := toInt(v); ok {
			return n
		}
	}
	if v, ok := ObjectOption(opts)[key]; ok {
		if n, ok := toInt(v); ok {
			return n
		}
	}
	return defaultVal
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// GetBoolOption extracts a named bool option.
func GetBoolOption(opts []any, key string, defaultVal bool) bool {
	return GetOption(opts, key, defaultVal)
}

// GetStringSliceOption extracts a named string list option.
func GetStringSliceOption(opts []any, key string, defaultVal []string) []string {
	v, ok := ObjectOption(opts)[key]
	if !ok {
		return defaultVal
	}
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return defaultVal
	}
}
