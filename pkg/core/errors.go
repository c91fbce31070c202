package core

import (
	"fmt"
	"strings"
)

// ConfigError is returned when configuration input is structurally invalid:
// a malformed block, an unknown severity token, an unknown naming selector,
// modifier or format. It is fatal at load time.
type ConfigError struct {
	Source  string // Config file path, empty for in-memory input
	Block   int    // Block index, -1 when the error is not block-scoped
	Field   string // Dotted field path within the block, e.g. "rules.curly"
	Message string
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("config error")
	if e.Source != "" {
		fmt.Fprintf(&b, " in %s", e.Source)
	}
	if e.Block >= 0 {
		fmt.Fprintf(&b, " at block %d", e.Block)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " (%s)", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// NewConfigError creates a ConfigError not tied to a block.
func NewConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{Block: -1, Field: field, Message: fmt.Sprintf(format, args...)}
}

// PatternError is returned when a glob pattern cannot be compiled.
// It is fatal at load time.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid pattern %q", e.Pattern)
	}
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
