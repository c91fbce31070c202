package lint

import (
	"fmt"
	"sync/atomic"

	"github.com/mitchellh/copystructure"

	"github.com/RamilHin/my-linter/pkg/core"
	"github.com/RamilHin/my-linter/pkg/glob"
	"github.com/RamilHin/my-linter/pkg/ignore"
	"github.com/RamilHin/my-linter/pkg/lint/naming"
)

// RuleSetting is the configured severity and options of one rule.
// Options are rule-specific and opaque to the engine.
type RuleSetting struct {
	Severity core.Severity `json:"severity" yaml:"severity"`
	Options  []any         `json:"options,omitempty" yaml:"options,omitempty"`
}

// Block is one unit of configuration: which files it applies to and the rule
// settings it contributes. Blocks are immutable once placed in a Store.
type Block struct {
	Index int    // Declaration index; later blocks take precedence
	Name  string // Optional label used in logs and output

	Files   glob.Set // Empty means every file
	Ignores glob.Set // Files excluded from this block only

	Rules           map[string]RuleSetting
	LanguageOptions map[string]any // nil when the block does not set them
	Naming          []naming.Selector
}

// Matches reports whether the block applies to path.
func (b *Block) Matches(path string) bool {
	return b.Files.Matches(path) && !b.Ignores.Any(path)
}

// Label returns the block name, or its index when unnamed.
func (b *Block) Label() string {
	if b.Name != "" {
		return b.Name
	}
	return fmt.Sprintf("#%d", b.Index)
}

var storeVersion atomic.Uint64

// Store is an immutable snapshot of loaded configuration: the global ignore
// filter and the ordered blocks.
type Store struct {
	blocks  []Block
	ignore  *ignore.Filter
	source  string
	version uint64
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithSource records where the configuration came from, for error messages
// and display.
func WithSource(path string) StoreOption {
	return func(s *Store) { s.source = path }
}

// NewStore validates and freezes blocks. Block indices must strictly increase
// and no two naming selectors may share a position. Rule options and language
// options are deep-copied so later changes to the inputs are not observed. A
// nil filter ignores nothing.
func NewStore(blocks []Block, filter *ignore.Filter, opts ...StoreOption) (*Store, error) {
	s := &Store{
		blocks:  make([]Block, len(blocks)),
		ignore:  filter,
		version: storeVersion.Add(1),
	}
	for _, opt := range opts {
		opt(s)
	}

	var selectors []naming.Selector
	for i, b := range blocks {
		if i > 0 && b.Index <= blocks[i-1].Index {
			return nil, &core.ConfigError{
				Source:  s.source,
				Block:   b.Index,
				Message: fmt.Sprintf("block index %d declared after block %d", b.Index, blocks[i-1].Index),
			}
		}
		clone, err := cloneBlock(b)
		if err != nil {
			return nil, &core.ConfigError{Source: s.source, Block: b.Index, Message: err.Error()}
		}
		s.blocks[i] = clone
		selectors = append(selectors, b.Naming...)
	}
	if err := naming.Validate(selectors); err != nil {
		if ce, ok := err.(*core.ConfigError); ok {
			ce.Source = s.source
		}
		return nil, err
	}
	return s, nil
}

func cloneBlock(b Block) (Block, error) {
	out := b
	out.Rules = make(map[string]RuleSetting, len(b.Rules))
	for id, rs := range b.Rules {
		opts, err := deepCopy(rs.Options)
		if err != nil {
			return Block{}, fmt.Errorf("copying options of rule %s: %w", id, err)
		}
		rs.Options = opts
		out.Rules[id] = rs
	}
	lo, err := deepCopy(b.LanguageOptions)
	if err != nil {
		return Block{}, fmt.Errorf("copying language options: %w", err)
	}
	out.LanguageOptions = lo
	out.Naming = append([]naming.Selector(nil), b.Naming...)
	for i := range out.Naming {
		if f := out.Naming[i].Format; f != nil {
			out.Naming[i].Format = append([]naming.Format{}, f...)
		}
	}
	return out, nil
}

func deepCopy[T any](v T) (T, error) {
	var zero T
	c, err := copystructure.Copy(v)
	if err != nil {
		return zero, err
	}
	if c == nil {
		return zero, nil
	}
	return c.(T), nil
}

// Blocks returns the blocks in declaration order. Callers must not modify them.
func (s *Store) Blocks() []Block {
	return s.blocks
}

// Ignore returns the global ignore filter, which may be nil.
func (s *Store) Ignore() *ignore.Filter {
	return s.ignore
}

// Source returns the config path the store was loaded from, if any.
func (s *Store) Source() string {
	return s.source
}

// Version identifies this snapshot. Every NewStore call yields a new version.
func (s *Store) Version() uint64 {
	return s.version
}

// Concat appends the blocks of later stores after this one's, shifting their
// indices so that later stores take precedence. Ignore patterns are combined.
func Concat(filter *ignore.Filter, stores ...*Store) (*Store, error) {
	var blocks []Block
	offset := 0
	for _, st := range stores {
		if st == nil {
			continue
		}
		next := offset
		for _, b := range st.blocks {
			b.Naming = append([]naming.Selector(nil), b.Naming...)
			b.Index += offset
			for i := range b.Naming {
				b.Naming[i].Position.Block += offset
			}
			if b.Index+1 > next {
				next = b.Index + 1
			}
			blocks = append(blocks, b)
		}
		offset = next
	}
	return NewStore(blocks, filter)
}
