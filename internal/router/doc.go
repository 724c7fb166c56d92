// Package router implements the route-matching engine: path-template
// compilation, pattern matching against concrete request paths, and a
// bounded per-path match cache.
//
// Templates are path strings whose ':'-prefixed segments bind one path
// segment each:
//
//	tpl, _ := router.CompileTemplate("/users/:id/posts/:post")
//	params, ok := tpl.Match("/users/7/posts/42")
//	// params = {"id": "7", "post": "42"}
//
// A Store holds the process-wide route table and its derived match
// cache behind a single atomic pointer, so concurrent requests match
// without locks and bulk route replacement is all-or-nothing:
//
//	store := router.NewStore(router.WithCacheLimit(1024))
//	err := store.SetRoutes(map[string]router.Handler{
//	    "/users/:id": showUser,
//	    "404":        notFound,
//	})
//	result, err := store.Match(ctx, "/users/7")
//
// The match cache memoizes only the winning route per concrete path;
// parameter bindings are recomputed on every call. When an insert
// would exceed the configured limit the whole cache is dropped and
// rebuilt from the triggering entry, trading periodic cold bursts for
// zero per-entry bookkeeping.
package router
