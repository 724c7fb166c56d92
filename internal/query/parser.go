package query

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Regex gates for key shapes and value coercion. The numeric gates
// restrict the character set so the strconv parses below cannot fail
// except on range overflow.
var (
	objectKeyPattern = regexp.MustCompile(`^(\w+)((?:\[\w+\])+)$`)
	bracketPattern   = regexp.MustCompile(`\[(\w+)\]`)
	intPattern       = regexp.MustCompile(`^\d+$`)
	floatPattern     = regexp.MustCompile(`^[-+]?\d+\.\d+$`)
)

// Parse turns a raw query string into a nested Object. An empty or
// absent query string yields an empty Object. A leading '?' is
// tolerated. Empty tokens produced by splitting on '&' are dropped.
func Parse(raw string) Object {
	result := make(Object)

	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return result
	}

	for _, token := range strings.Split(raw, "&") {
		if token == "" {
			continue
		}

		key, value := splitPair(token)
		key = decode(key)

		if m := objectKeyPattern.FindStringSubmatch(key); m != nil {
			path := objectPath(m)
			result.Merge(nestedAssignment(path, Coerce(decode(value))))
			continue
		}

		result[key] = Coerce(decode(value))
	}

	return result
}

// splitPair splits a token on the first '='. A token without '='
// yields an empty value.
func splitPair(token string) (key, value string) {
	if i := strings.IndexByte(token, '='); i >= 0 {
		return token[:i], token[i+1:]
	}
	return token, ""
}

// decode percent-decodes s, falling back to the raw text when the
// escape sequences are malformed.
func decode(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// objectPath expands an object-parameter key match into its key path:
// "a[b][c]" becomes ["a", "b", "c"].
func objectPath(match []string) []string {
	path := []string{match[1]}
	for _, bracket := range bracketPattern.FindAllStringSubmatch(match[2], -1) {
		path = append(path, bracket[1])
	}
	return path
}

// nestedAssignment builds {a: {b: ... {n: leaf}}} for a key path.
func nestedAssignment(path []string, leaf Value) Object {
	obj := Object{path[len(path)-1]: leaf}
	for i := len(path) - 2; i >= 0; i-- {
		obj = Object{path[i]: ObjectValue(obj)}
	}
	return obj
}

// Coerce converts a decoded value string into a typed Value. The
// cascade is ordered and the first matching rule wins:
//
//  1. fully quoted ('x' or "x") -> the inner string, verbatim
//  2. true / false              -> bool
//  3. all digits                -> int
//  4. signed decimal fraction   -> float
//  5. anything else             -> string
func Coerce(s string) Value {
	if inner, ok := unquote(s); ok {
		return StringValue(inner)
	}

	switch s {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}

	if intPattern.MatchString(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IntValue(i)
		}
		// Out of int64 range: keep the digits as text.
		return StringValue(s)
	}

	if floatPattern.MatchString(s) {
		f, _ := strconv.ParseFloat(s, 64)
		return FloatValue(f)
	}

	return StringValue(s)
}

// unquote strips one pair of matching wrapping quotes.
func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	first, last := s[0], s[len(s)-1]
	if first != last || (first != '\'' && first != '"') {
		return "", false
	}
	return s[1 : len(s)-1], true
}
