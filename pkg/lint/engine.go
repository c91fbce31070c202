package lint

import (
	"context"
	"log/slog"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/RamilHin/my-linter/pkg/glob"
	"github.com/RamilHin/my-linter/pkg/lint/naming"
)

// DefaultCacheSize is the number of effective configs kept per snapshot.
const DefaultCacheSize = 1024

// snapshot pairs a Store with the cache of configs computed from it, so
// replacing the snapshot invalidates the cache in the same step.
type snapshot struct {
	store  *Store
	merger *Merger
	cache  *lru.Cache[string, *EffectiveConfig] // nil when caching is disabled
}

func (s *snapshot) resolve(path string) *EffectiveConfig {
	path = glob.Normalize(path)
	if s.cache != nil {
		if c, ok := s.cache.Get(path); ok {
			return c
		}
	}
	c := s.merger.Resolve(path)
	if s.cache != nil {
		s.cache.Add(path, c)
	}
	return c
}

// Engine answers configuration queries for the rule-execution layer. It holds
// the current Store snapshot and swaps it atomically on Reload; every query
// reads exactly one snapshot.
type Engine struct {
	current   atomic.Pointer[snapshot]
	cacheSize int
	logger    *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithCacheSize sets the per-snapshot cache size. Zero or less disables caching.
func WithCacheSize(n int) EngineOption {
	return func(e *Engine) { e.cacheSize = n }
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine serving store.
func NewEngine(store *Store, opts ...EngineOption) *Engine {
	e := &Engine{
		cacheSize: DefaultCacheSize,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.current.Store(e.newSnapshot(store))
	return e
}

func (e *Engine) newSnapshot(store *Store) *snapshot {
	snap := &snapshot{
		store:  store,
		merger: NewMerger(store, e.logger),
	}
	if e.cacheSize > 0 {
		// lru.New only fails for non-positive sizes.
		cache, err := lru.New[string, *EffectiveConfig](e.cacheSize)
		if err == nil {
			snap.cache = cache
		}
	}
	return snap
}

// Reload replaces the served Store. Queries already running finish against
// the previous snapshot.
func (e *Engine) Reload(store *Store) {
	prev := e.current.Swap(e.newSnapshot(store))
	e.logger.Info("configuration reloaded",
		"previous_version", prev.store.Version(),
		"version", store.Version(),
		"blocks", len(store.Blocks()))
}

// Store returns the currently served Store.
func (e *Engine) Store() *Store {
	return e.current.Load().store
}

// Version returns the version of the currently served Store.
func (e *Engine) Version() uint64 {
	return e.current.Load().store.Version()
}

// GetEffectiveConfig returns the configuration that applies to path.
func (e *Engine) GetEffectiveConfig(path string) *EffectiveConfig {
	return e.current.Load().resolve(path)
}

// GetNamingConstraint returns the naming constraint for a symbol of the given
// kind and modifiers declared in path. It returns false when the file is
// ignored or no selector applies.
func (e *Engine) GetNamingConstraint(path string, kind naming.Kind, mods naming.Modifiers) (*naming.Constraint, bool) {
	return e.GetEffectiveConfig(path).NamingConstraint(kind, mods)
}

// ResolveAll resolves many paths concurrently against a single snapshot.
// Results are in input order. workers <= 0 means no limit.
func (e *Engine) ResolveAll(ctx context.Context, paths []string, workers int) ([]*EffectiveConfig, error) {
	snap := e.current.Load()
	results := make([]*EffectiveConfig, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = snap.resolve(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
