// Package core defines the shared language of mylint.
//
// This package contains:
//   - Severity levels and their parsing
//   - Typed load-time errors (ConfigError, PatternError)
//   - Rule metadata DTOs used by tooling
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
