package naming

import (
	"strings"
	"unicode"

	"github.com/RamilHin/my-linter/pkg/core"
)

// Format is an accepted naming style.
type Format int

// Naming formats.
const (
	FormatCamelCase Format = iota
	FormatStrictCamelCase
	FormatPascalCase
	FormatStrictPascalCase
	FormatSnakeCase
	FormatUpperCase
)

var formatNames = []string{
	FormatCamelCase:        "camelCase",
	FormatStrictCamelCase:  "strictCamelCase",
	FormatPascalCase:       "PascalCase",
	FormatStrictPascalCase: "StrictPascalCase",
	FormatSnakeCase:        "snake_case",
	FormatUpperCase:        "UPPER_CASE",
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// MarshalText renders the format by name.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if name == s {
			return Format(i), nil
		}
	}
	return 0, core.NewConfigError("format", "unknown format %q (valid: %s)", s, strings.Join(formatNames, ", "))
}

// Matches reports whether name, with permitted underscores already stripped,
// is written in this format. The empty name matches every format.
func (f Format) Matches(name string) bool {
	if name == "" {
		return true
	}
	switch f {
	case FormatCamelCase:
		return !startsUpper(name) && !strings.Contains(name, "_")
	case FormatStrictCamelCase:
		return !startsUpper(name) && strictHumps(name, false)
	case FormatPascalCase:
		return startsUpper(name) && !strings.Contains(name, "_")
	case FormatStrictPascalCase:
		return startsUpper(name) && strictHumps(name, true)
	case FormatSnakeCase:
		return name == strings.ToLower(name) && validUnderscores(name)
	case FormatUpperCase:
		return name == strings.ToUpper(name) && validUnderscores(name)
	default:
		return false
	}
}

func startsUpper(name string) bool {
	r := []rune(name)[0]
	return unicode.ToUpper(r) == r && unicode.ToLower(r) != r
}

// strictHumps rejects consecutive capitals such as "HTTPServer".
func strictHumps(name string, upper bool) bool {
	if strings.HasPrefix(name, "_") {
		return false
	}
	runes := []rune(name)
	for _, r := range runes[1:] {
		if r == '_' {
			return false
		}
		isUpper := unicode.IsUpper(r)
		if upper == isUpper {
			if upper {
				return false
			}
		} else {
			upper = !upper
		}
	}
	return true
}

// validUnderscores rejects leading, trailing and doubled underscores.
func validUnderscores(name string) bool {
	if strings.HasPrefix(name, "_") || strings.HasSuffix(name, "_") {
		return false
	}
	return !strings.Contains(name, "__")
}

// Underscore is the policy for a leading or trailing underscore.
type Underscore int

// Underscore policies. The zero value allows an underscore.
const (
	UnderscoreAllow Underscore = iota
	UnderscoreRequire
	UnderscoreForbid
)

func (u Underscore) String() string {
	switch u {
	case UnderscoreRequire:
		return "require"
	case UnderscoreForbid:
		return "forbid"
	default:
		return "allow"
	}
}

// MarshalText renders the policy by name.
func (u Underscore) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// ParseUnderscore converts a policy name. The empty string means allow.
func ParseUnderscore(s string) (Underscore, error) {
	switch s {
	case "", "allow":
		return UnderscoreAllow, nil
	case "require":
		return UnderscoreRequire, nil
	case "forbid":
		return UnderscoreForbid, nil
	default:
		return 0, core.NewConfigError("leadingUnderscore", "unknown underscore policy %q (valid: require, forbid, allow)", s)
	}
}
