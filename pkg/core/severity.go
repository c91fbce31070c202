package core

import (
	"fmt"
	"strings"
)

// =============================================================================
// Severity
// =============================================================================

// Severity is the enforcement level configured for a rule.
// The numeric values match the levels accepted in config files (0, 1, 2).
type Severity int

// Severity levels for rules.
const (
	// SeverityOff disables the rule.
	SeverityOff Severity = iota
	// SeverityWarn reports violations without failing the run.
	SeverityWarn
	// SeverityError reports violations that fail CI.
	SeverityError
)

// String returns the config token for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// IsActive reports whether a rule at this severity runs at all.
func (s Severity) IsActive() bool {
	return s == SeverityWarn || s == SeverityError
}

// IsFatal reports whether violations at this severity should fail a run.
// Whether a run actually fails is decided by the reporting layer.
func (s Severity) IsFatal() bool {
	return s == SeverityError
}

// MarshalText implements encoding.TextMarshaler so severities render as tokens
// in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	if s < SeverityOff || s > SeverityError {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only the tokens produced
// by MarshalText are accepted.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, ok := ParseSeverity(string(text))
	if !ok {
		return NewConfigError("", "unknown severity %q (valid: off, warn, error)", string(text))
	}
	*s = sev
	return nil
}

// ParseSeverity converts a config token to a Severity value.
// Numeric levels are not tokens; use SeverityFromLevel for those.
// Returns the severity and true if valid, or SeverityOff and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return SeverityOff, true
	case "warn":
		return SeverityWarn, true
	case "error":
		return SeverityError, true
	default:
		return SeverityOff, false
	}
}

// SeverityFromLevel converts a numeric level (0, 1, 2) to a Severity.
func SeverityFromLevel(level int) (Severity, bool) {
	switch level {
	case 0:
		return SeverityOff, true
	case 1:
		return SeverityWarn, true
	case 2:
		return SeverityError, true
	default:
		return SeverityOff, false
	}
}

// =============================================================================
// RuleInfo
// =============================================================================

// RuleInfo provides metadata about a registered rule for documentation/tooling.
// This is a DTO (Data Transfer Object) - it carries data without behavior.
type RuleInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	// Configured is the severity for the file being inspected, if any.
	Configured *Severity `json:"configured,omitempty"`
}
