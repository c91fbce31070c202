package lint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RamilHin/my-linter/pkg/core"
	"github.com/RamilHin/my-linter/pkg/glob"
	"github.com/RamilHin/my-linter/pkg/ignore"
)

// block builds a Block from source patterns and bare severities.
func block(t *testing.T, index int, files []string, rules map[string]core.Severity) Block {
	t.Helper()
	set, err := glob.CompileSet(files)
	require.NoError(t, err)

	b := Block{Index: index, Files: set, Rules: make(map[string]RuleSetting, len(rules))}
	for id, sev := range rules {
		b.Rules[id] = RuleSetting{Severity: sev}
	}
	return b
}

func newStore(t *testing.T, ignores []string, blocks ...Block) *Store {
	t.Helper()
	filter, err := ignore.New(ignores, ignore.WithoutDefaults())
	require.NoError(t, err)
	store, err := NewStore(blocks, filter)
	require.NoError(t, err)
	return store
}
