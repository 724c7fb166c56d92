package router

import (
	"net/http"
	"sort"

	"github.com/vyrodovalexey/avarouter/internal/util"
)

// FallbackTemplate is the reserved template key designating the
// fallback route invoked when no pattern matches a request path.
const FallbackTemplate = "404"

// Response is the value a handler returns. The dispatcher owns
// writing it to the transport; handlers only build it.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Text builds a plain-text response.
func Text(status int, body string) *Response {
	h := http.Header{}
	h.Set("Content-Type", "text/plain; charset=utf-8")
	return &Response{Status: status, Header: h, Body: []byte(body)}
}

// HTML builds an HTML response.
func HTML(status int, body string) *Response {
	h := http.Header{}
	h.Set("Content-Type", "text/html; charset=utf-8")
	return &Response{Status: status, Header: h, Body: []byte(body)}
}

// Handler is the opaque callable bound to a route. It receives the
// inbound request and the per-request state and returns the response
// to write. A nil Handler is rejected at registration time.
type Handler func(r *http.Request, st *State) *Response

// Route is one registered endpoint: the original template, its
// compiled pattern, and the bound handler. Routes are immutable after
// construction and shared by the table and the match cache without
// copying.
type Route struct {
	Template string
	Handler  Handler

	pattern *Template
}

// Params recomputes the path-parameter bindings for a concrete path
// against this route's pattern. The second return is false when the
// path no longer matches, which cannot happen for paths resolved
// through the same table generation.
func (r *Route) Params(path string) (map[string]string, bool) {
	return r.pattern.Match(path)
}

// ParamNames returns the route's parameter names in template order.
func (r *Route) ParamNames() []string {
	return r.pattern.ParamNames
}

// Pattern returns the route's compiled pattern source.
func (r *Route) Pattern() string {
	return r.pattern.Pattern()
}

// RouteDef pairs a template with its handler for ordered
// registration.
type RouteDef struct {
	Template string
	Handler  Handler
}

// Table is an immutable compiled route table. Scan order is the
// registration order, which is also the match priority: when two
// templates could match the same path, the earlier registration wins.
// The table owns its match cache so that a table swap atomically
// retires the cache derived from the previous generation.
type Table struct {
	routes     []*Route
	byTemplate map[string]*Route
	fallback   *Route
	cache      *matchCache
}

// NewTable compiles a route definition map into a Table. Iteration
// order of a Go map is randomized, so entries are installed in sorted
// template order to keep overlap resolution deterministic; use
// NewTableOrdered to control the order explicitly. Compilation is
// all-or-nothing: any invalid definition fails the whole build.
func NewTable(defs map[string]Handler, cacheLimit int) (*Table, error) {
	templates := make([]string, 0, len(defs))
	for tpl := range defs {
		templates = append(templates, tpl)
	}
	sort.Strings(templates)

	ordered := make([]RouteDef, 0, len(defs))
	for _, tpl := range templates {
		ordered = append(ordered, RouteDef{Template: tpl, Handler: defs[tpl]})
	}

	return NewTableOrdered(ordered, cacheLimit)
}

// NewTableOrdered compiles route definitions preserving the given
// registration order.
func NewTableOrdered(defs []RouteDef, cacheLimit int) (*Table, error) {
	t := &Table{
		routes:     make([]*Route, 0, len(defs)),
		byTemplate: make(map[string]*Route, len(defs)),
		cache:      newMatchCache(cacheLimit),
	}

	for _, def := range defs {
		if def.Handler == nil {
			return nil, util.NewRegistrationError(def.Template, "handler is nil")
		}
		if _, exists := t.byTemplate[def.Template]; exists {
			return nil, util.NewRegistrationError(def.Template, "duplicate template")
		}

		pattern, err := CompileTemplate(def.Template)
		if err != nil {
			return nil, util.NewRegistrationErrorWithCause(def.Template, "pattern compilation failed", err)
		}

		route := &Route{
			Template: def.Template,
			Handler:  def.Handler,
			pattern:  pattern,
		}
		t.byTemplate[def.Template] = route

		// The fallback route never participates in matching.
		if def.Template == FallbackTemplate {
			t.fallback = route
			continue
		}
		t.routes = append(t.routes, route)
	}

	return t, nil
}

// Route returns the route registered under template.
func (t *Table) Route(template string) (*Route, bool) {
	r, ok := t.byTemplate[template]
	return r, ok
}

// Fallback returns the route registered under FallbackTemplate, or
// nil when none was registered.
func (t *Table) Fallback() *Route {
	return t.fallback
}

// Len returns the number of registered routes, fallback included.
func (t *Table) Len() int {
	return len(t.byTemplate)
}

// Templates returns the matchable templates in scan order.
func (t *Table) Templates() []string {
	out := make([]string, len(t.routes))
	for i, r := range t.routes {
		out[i] = r.Template
	}
	return out
}
