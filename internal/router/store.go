package router

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vyrodovalexey/avarouter/internal/observability"
	"github.com/vyrodovalexey/avarouter/internal/util"
)

// routerTracerName is the OpenTelemetry tracer name for match operations.
const routerTracerName = "avarouter/router"

// MatchResult is the outcome of a successful match: the winning route
// and the parameter bindings recomputed for the concrete path.
type MatchResult struct {
	Route      *Route
	PathParams map[string]string
}

// Store is the single concurrency-safe container for the process-wide
// route table and its derived match cache. The current table
// generation (which owns its cache) sits behind one atomic pointer:
// SetRoutes swaps the whole generation, so a table replacement
// atomically retires every cached entry derived from the previous
// table, and the hot matching path takes no locks.
type Store struct {
	current    atomic.Pointer[Table]
	cacheLimit atomic.Int64
	logger     observability.Logger
}

// StoreOption is a functional option for configuring a Store.
type StoreOption func(*Store)

// WithCacheLimit bounds the match cache. Non-positive values fall
// back to the default limit.
func WithCacheLimit(limit int) StoreOption {
	return func(s *Store) {
		s.cacheLimit.Store(int64(limit))
	}
}

// WithLogger sets the logger used for registration and match events.
func WithLogger(logger observability.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{logger: observability.NopLogger()}
	s.cacheLimit.Store(defaultCacheLimit)

	for _, opt := range opts {
		opt(s)
	}

	empty, _ := NewTableOrdered(nil, int(s.cacheLimit.Load()))
	s.current.Store(empty)

	return s
}

// SetRoutes bulk-replaces the route table from a template-to-handler
// map. Replacement is all-or-nothing: any nil handler or uncompilable
// template aborts the call and leaves the previously installed table
// untouched. On success the match cache starts empty.
func (s *Store) SetRoutes(defs map[string]Handler) error {
	table, err := NewTable(defs, int(s.cacheLimit.Load()))
	if err != nil {
		return err
	}
	s.install(table)
	return nil
}

// SetRoutesOrdered bulk-replaces the route table preserving the given
// registration order, which is also the overlap-resolution order.
func (s *Store) SetRoutesOrdered(defs []RouteDef) error {
	table, err := NewTableOrdered(defs, int(s.cacheLimit.Load()))
	if err != nil {
		return err
	}
	s.install(table)
	return nil
}

func (s *Store) install(table *Table) {
	s.current.Store(table)
	s.logger.Info("routes installed",
		observability.Int("count", table.Len()),
		observability.Strings("templates", table.Templates()))
}

// Table returns the current table generation.
func (s *Store) Table() *Table {
	return s.current.Load()
}

// CacheSize returns the number of entries in the current match cache.
func (s *Store) CacheSize() int {
	return s.current.Load().cache.size()
}

// SetCacheLimit changes the cache bound for subsequent generations
// and resets the current cache under the new limit. The installed
// routes are unaffected.
func (s *Store) SetCacheLimit(limit int) {
	if limit <= 0 {
		limit = defaultCacheLimit
	}
	s.cacheLimit.Store(int64(limit))

	// Tables are immutable once installed: publish a new generation
	// sharing the compiled routes but carrying a fresh cache.
	table := s.current.Load()
	s.current.Store(&Table{
		routes:     table.routes,
		byTemplate: table.byTemplate,
		fallback:   table.fallback,
		cache:      newMatchCache(limit),
	})
	s.logger.Info("match cache reset", observability.Int("limit", limit))
}

// Match resolves a concrete path to a route and its parameter
// bindings.
//
// The cache is consulted first, keyed by the exact path string; a hit
// skips the linear scan but still recomputes the parameter map from
// the cached route's pattern. On a miss the table is scanned in
// registration order and the first full-pattern match wins; the
// winning route is then memoized under the size-bound policy. When no
// pattern matches, a RouteNotFoundError (matching util.ErrNotFound)
// reports the designed not-found outcome.
func (s *Store) Match(ctx context.Context, path string) (*MatchResult, error) {
	_, span := otel.Tracer(routerTracerName).Start(ctx, "router.Match",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("router.path", path)),
	)
	defer span.End()

	table := s.current.Load()
	metrics := getMatchCacheMetrics()

	if route, ok := table.cache.lookup(path); ok {
		metrics.hits.Inc()
		span.SetAttributes(
			attribute.Bool("router.cache_hit", true),
			attribute.String("router.template", route.Template),
		)

		params, ok := route.Params(path)
		if !ok {
			// Unreachable for entries produced by this generation.
			params = make(map[string]string)
		}
		return &MatchResult{Route: route, PathParams: params}, nil
	}

	metrics.misses.Inc()

	for _, route := range table.routes {
		params, ok := route.Params(path)
		if !ok {
			continue
		}

		table.cache.insert(path, route)
		span.SetAttributes(
			attribute.Bool("router.cache_hit", false),
			attribute.String("router.template", route.Template),
		)
		s.logger.Debug("route matched",
			observability.String("path", path),
			observability.String("template", route.Template))

		return &MatchResult{Route: route, PathParams: params}, nil
	}

	span.SetAttributes(attribute.Bool("router.matched", false))
	return nil, util.NewRouteNotFoundError(path)
}
