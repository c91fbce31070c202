// Package ignore implements the global ignore list. A path matched here is
// never resolved against config blocks: it is not analyzed at all.
//
// Patterns are globs anchored at the project root. A pattern that matches a
// directory also ignores everything beneath it:
//
//	temp      "temp" at the root and everything beneath it, not "src/temp"
//	dist/     same as "dist"; the trailing slash is informational
//	a/b/*.js  glob relative to the project root
//	**/x      "x" at any depth
//	!pattern  re-include a path excluded by an earlier pattern
//
// Patterns are evaluated in order and the last matching pattern decides.
package ignore

import (
	"errors"
	"strings"

	"github.com/RamilHin/my-linter/pkg/core"
	"github.com/RamilHin/my-linter/pkg/glob"
)

var errEmptyPattern = errors.New("pattern matches nothing")

// DefaultPatterns are the build, output and dependency directories ignored
// unless WithoutDefaults is used.
var DefaultPatterns = []string{
	"**/node_modules/",
	"**/.git/",
	"**/dist/",
	"**/build/",
	"**/coverage/",
}

type rule struct {
	source  string
	negate  bool
	matches glob.Set
}

// Filter decides whether a path is globally ignored. It is immutable and
// safe for concurrent use.
type Filter struct {
	rules    []rule
	patterns []string
}

type options struct {
	defaults bool
}

// Option configures a Filter.
type Option func(*options)

// WithoutDefaults drops DefaultPatterns from the filter.
func WithoutDefaults() Option {
	return func(o *options) { o.defaults = false }
}

// New compiles the given patterns, preceded by DefaultPatterns unless
// WithoutDefaults is passed. Malformed patterns return a *core.PatternError.
func New(patterns []string, opts ...Option) (*Filter, error) {
	o := options{defaults: true}
	for _, opt := range opts {
		opt(&o)
	}

	all := patterns
	if o.defaults {
		all = make([]string, 0, len(DefaultPatterns)+len(patterns))
		all = append(all, DefaultPatterns...)
		all = append(all, patterns...)
	}

	f := &Filter{patterns: all}
	for _, raw := range all {
		r, skip, err := compileRule(raw)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		f.rules = append(f.rules, r)
	}
	return f, nil
}

// compileRule compiles one ignore pattern into the globs that implement it:
// the pattern itself and everything beneath what it matches. Blank patterns
// are skipped.
func compileRule(raw string) (rule, bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return rule{}, true, nil
	}

	r := rule{source: raw}
	if rest, ok := strings.CutPrefix(trimmed, "!"); ok {
		r.negate = true
		trimmed = rest
	}

	body := strings.TrimSuffix(glob.Normalize(trimmed), "/")
	body = strings.TrimPrefix(body, "/")
	if body == "" {
		return rule{}, false, &core.PatternError{Pattern: raw, Err: errEmptyPattern}
	}

	globs := []string{body}
	if !strings.HasSuffix(body, "/**") {
		globs = append(globs, body+"/**")
	}
	set, err := glob.CompileSet(globs)
	if err != nil {
		var patErr *core.PatternError
		if errors.As(err, &patErr) {
			return rule{}, false, &core.PatternError{Pattern: raw, Err: patErr.Err}
		}
		return rule{}, false, err
	}
	r.matches = set
	return r, false, nil
}

// IsIgnored reports whether path is excluded from analysis.
func (f *Filter) IsIgnored(path string) bool {
	if f == nil {
		return false
	}
	path = glob.Normalize(path)
	ignored := false
	for _, r := range f.rules {
		if r.matches.Any(path) {
			ignored = !r.negate
		}
	}
	return ignored
}

// Patterns returns every pattern the filter was built from, defaults first.
func (f *Filter) Patterns() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.patterns))
	copy(out, f.patterns)
	return out
}
