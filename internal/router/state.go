package router

import (
	"sort"

	"github.com/vyrodovalexey/avarouter/internal/query"
)

// State is the ephemeral per-request record handed to handlers: the
// request path, the parsed query parameters, and the path parameters
// extracted by the matcher. It is created fresh per request and never
// shared across requests, so it carries no locking; handlers may
// chain additional values through Set without racing other requests.
type State struct {
	// Path is the concrete request path being dispatched.
	Path string

	// Query holds the parsed, coerced query parameters.
	Query query.Object

	// Params maps parameter names to the path segments they bound.
	Params map[string]string

	extra map[string]any
}

// NewState creates the request state for a path and its parsed query.
func NewState(path string, q query.Object) *State {
	if q == nil {
		q = make(query.Object)
	}
	return &State{
		Path:   path,
		Query:  q,
		Params: make(map[string]string),
	}
}

// Param returns the path parameter bound to name, or "".
func (s *State) Param(name string) string {
	return s.Params[name]
}

// Set stores a handler-scoped value under key.
func (s *State) Set(key string, value any) {
	if s.extra == nil {
		s.extra = make(map[string]any)
	}
	s.extra[key] = value
}

// Get returns a handler-scoped value stored under key.
func (s *State) Get(key string) (any, bool) {
	v, ok := s.extra[key]
	return v, ok
}

// Keys returns the sorted keys of handler-scoped values.
func (s *State) Keys() []string {
	keys := make([]string, 0, len(s.extra))
	for k := range s.extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
