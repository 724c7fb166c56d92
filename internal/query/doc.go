// Package query parses raw query strings into nested, typed values.
//
// The parser splits the raw string on '&', discards empty tokens, and
// splits each pair on the first '='. Values are percent-decoded and
// then coerced through an ordered cascade: quoted string, boolean,
// integer, float, plain string. Keys in object-parameter notation
// (name[a][b]=v) are reconstructed into nested objects and deep-merged
// with values from sibling pairs:
//
//	obj := query.Parse("filter[age]=30&filter[active]=true&page=2")
//	obj["filter"].Object()["age"].Int64() // 30
//	obj["page"].Int64()                   // 2
//
// Parsing never fails: malformed tokens are dropped or kept as plain
// strings, matching the forgiving semantics expected at an HTTP
// boundary.
package query
