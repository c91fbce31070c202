// Package glob matches file paths against the glob patterns used in config
// blocks.
//
// Patterns use "/" as the path separator:
//
//	"*"     any characters except "/"
//	"**"    any characters including "/"
//	"?"     one character except "/"
//	"[ab]"  character class, "{a,b}" alternation
//
// A "**/" segment also matches zero directories, so "**/*.ts" matches
// "main.ts" and "src/**/*.ts" matches "src/main.ts".
// Negated patterns ("!x") are not valid here; negation only exists in the
// ignore filter.
package glob

import (
	"errors"
	"strings"

	gobwas "github.com/gobwas/glob"

	"github.com/RamilHin/my-linter/pkg/core"
)

// Separator is the path separator patterns are compiled against.
const Separator = '/'

// Pattern is a compiled glob pattern.
type Pattern struct {
	source string
	globs  []gobwas.Glob // one per expansion of "**/" segments
}

// Compile compiles a single pattern. Malformed patterns return a
// *core.PatternError.
func Compile(pattern string) (*Pattern, error) {
	if pattern == "" {
		return nil, &core.PatternError{Pattern: pattern, Err: errors.New("empty pattern")}
	}
	if strings.HasPrefix(pattern, "!") {
		return nil, &core.PatternError{Pattern: pattern, Err: errors.New("negated patterns are only allowed in ignores")}
	}

	src := strings.TrimPrefix(Normalize(pattern), "/")
	p := &Pattern{source: pattern}
	for _, variant := range expandGlobstar(src) {
		g, err := gobwas.Compile(variant, Separator)
		if err != nil {
			return nil, &core.PatternError{Pattern: pattern, Err: err}
		}
		p.globs = append(p.globs, g)
	}
	return p, nil
}

// expandGlobstar returns src plus every variant with one or more "**/"
// segments removed. gobwas requires the "/" after "**", so each removal
// stands for the zero-directory case.
func expandGlobstar(src string) []string {
	for i := 0; i+3 <= len(src); i++ {
		if src[i:i+3] != "**/" || (i > 0 && src[i-1] != '/') {
			continue
		}
		head, tail := src[:i], src[i+3:]
		var out []string
		for _, rest := range expandGlobstar(tail) {
			out = append(out, head+"**/"+rest)
			if head+rest != "" {
				out = append(out, head+rest)
			}
		}
		return out
	}
	return []string{src}
}

// MustCompile is like Compile but panics on error. Intended for defaults and tests.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pattern as written.
func (p *Pattern) String() string {
	return p.source
}

// Match reports whether the normalized path matches the pattern.
func (p *Pattern) Match(path string) bool {
	path = Normalize(path)
	for _, g := range p.globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// Set is an unordered set of patterns. The empty set matches every path.
type Set []*Pattern

// CompileSet compiles every pattern, failing on the first malformed one.
func CompileSet(patterns []string) (Set, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	set := make(Set, 0, len(patterns))
	for _, raw := range patterns {
		p, err := Compile(raw)
		if err != nil {
			return nil, err
		}
		set = append(set, p)
	}
	return set, nil
}

// Matches reports whether at least one pattern in the set matches path.
func (s Set) Matches(path string) bool {
	if len(s) == 0 {
		return true
	}
	return s.Any(path)
}

// Any reports whether at least one pattern matches path. Unlike Matches, an
// empty set matches nothing.
func (s Set) Any(path string) bool {
	for _, p := range s {
		if p.Match(path) {
			return true
		}
	}
	return false
}

// Strings returns the source patterns.
func (s Set) Strings() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.source
	}
	return out
}

// Matches is the functional form of Set.Matches.
func Matches(set Set, path string) bool {
	return set.Matches(path)
}

// Normalize converts a path to the form patterns are matched against:
// forward slashes, no leading "./", no repeated or trailing slashes.
func Normalize(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
