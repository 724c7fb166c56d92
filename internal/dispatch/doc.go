// Package dispatch connects the transport to the route-matching
// engine. Per request it builds the ephemeral request state from the
// path and raw query string, resolves the route through the store,
// merges the extracted path parameters, and invokes the bound
// handler; unmatched paths fall back to the route registered under
// "404" or to a built-in minimal not-found response.
package dispatch
