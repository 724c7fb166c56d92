package dispatch

import (
	"errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vyrodovalexey/avarouter/internal/observability"
	"github.com/vyrodovalexey/avarouter/internal/query"
	"github.com/vyrodovalexey/avarouter/internal/router"
	"github.com/vyrodovalexey/avarouter/internal/util"
)

// dispatchTracerName is the OpenTelemetry tracer name for dispatch operations.
const dispatchTracerName = "avarouter/dispatch"

// defaultNotFoundBody is written when no route matches and no "404"
// route is registered.
const defaultNotFoundBody = `<!DOCTYPE html>
<html>
<head><title>404 Not Found</title></head>
<body><h1>404 Not Found</h1></body>
</html>
`

// RequestHook observes every request after its state is built and
// before the handler runs. It must not retain the state beyond the
// call.
type RequestHook func(r *http.Request, st *router.State)

// Dispatcher routes inbound requests to their handlers. It implements
// http.Handler so transport glue can mount it directly.
type Dispatcher struct {
	store   *router.Store
	logger  observability.Logger
	metrics *observability.Metrics
	hook    RequestHook
}

// Option is a functional option for configuring a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the dispatch logger.
func WithLogger(logger observability.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithMetrics enables per-request metrics recording.
func WithMetrics(m *observability.Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// WithRequestHook installs an observation hook invoked once per
// request. The hook has no effect on matching or parsing.
func WithRequestHook(hook RequestHook) Option {
	return func(d *Dispatcher) {
		d.hook = hook
	}
}

// New creates a Dispatcher over a route store.
func New(store *router.Store, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:  store,
		logger: observability.NopLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ServeHTTP dispatches one request.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, span := otel.Tracer(dispatchTracerName).Start(r.Context(), "dispatch.Dispatch",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("http.target", r.URL.Path)),
	)
	defer span.End()
	r = r.WithContext(ctx)

	if d.metrics != nil {
		d.metrics.RequestStarted()
		defer d.metrics.RequestFinished()
	}

	st := router.NewState(r.URL.Path, query.Parse(r.URL.RawQuery))

	if d.hook != nil {
		d.hook(r, st)
	}

	routeLabel, resp := d.resolve(r, st)
	span.SetAttributes(attribute.String("router.template", routeLabel))

	status := writeResponse(w, resp)

	if d.metrics != nil {
		d.metrics.RecordRequest(routeLabel, status, time.Since(start))
	}

	d.logger.WithContext(r.Context()).Debug("request dispatched",
		observability.String("path", st.Path),
		observability.String("route", routeLabel),
		observability.Int("status", status),
		observability.Duration("duration", time.Since(start)))
}

// resolve matches the request path and runs the winning handler,
// falling back to the registered "404" route or the built-in default.
func (d *Dispatcher) resolve(r *http.Request, st *router.State) (string, *router.Response) {
	result, err := d.store.Match(r.Context(), st.Path)
	if err != nil {
		if !errors.Is(err, util.ErrNotFound) {
			// Match only reports not-found; anything else would be a
			// programming error worth surfacing loudly.
			d.logger.Error("route match failed", observability.Error(err))
		}
		return d.fallback(r, st)
	}

	for name, value := range result.PathParams {
		st.Params[name] = value
	}

	ctx := util.ContextWithRoute(r.Context(), result.Route.Template)
	return result.Route.Template, result.Route.Handler(r.WithContext(ctx), st)
}

// fallback dispatches the not-found path: the "404" route when
// registered, the built-in default response otherwise.
func (d *Dispatcher) fallback(r *http.Request, st *router.State) (string, *router.Response) {
	if route := d.store.Table().Fallback(); route != nil {
		return router.FallbackTemplate, route.Handler(r, st)
	}
	return observability.UnmatchedRoute, DefaultNotFound()
}

// DefaultNotFound builds the built-in minimal not-found response.
func DefaultNotFound() *router.Response {
	return router.HTML(http.StatusNotFound, defaultNotFoundBody)
}

// writeResponse writes a handler response to the transport and
// returns the status code sent. A nil response becomes 204 No
// Content.
func writeResponse(w http.ResponseWriter, resp *router.Response) int {
	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return http.StatusNoContent
	}

	for name, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(name, v)
		}
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
	return status
}
