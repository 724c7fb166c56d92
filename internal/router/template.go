package router

import (
	"regexp"
	"strings"
)

// paramSegmentFragment matches one or more word characters and
// captures them positionally, one group per parameter segment.
const paramSegmentFragment = `(\w+)`

// Template is a compiled path template. A template consists of
// literal segments and ':'-prefixed parameter segments; compilation
// turns it into an anchored regular expression with one capture group
// per parameter, plus the ordered list of parameter names.
type Template struct {
	// Source is the template string as registered, e.g. "/users/:id".
	Source string

	// ParamNames holds the parameter names in template order. Its
	// length always equals the number of capture groups in the
	// compiled pattern.
	ParamNames []string

	regex *regexp.Regexp
}

// CompileTemplate compiles a path template. The template "/" is a
// single literal segment; any other template is split on '/', with
// each ':'-prefixed segment becoming a capturing wildcard and every
// other segment matched literally.
func CompileTemplate(source string) (*Template, error) {
	var pattern strings.Builder
	var paramNames []string

	pattern.WriteString("^")

	if source == "/" {
		pattern.WriteString("/")
	} else {
		for i, seg := range strings.Split(source, "/") {
			if i > 0 {
				pattern.WriteString("/")
			}
			if strings.HasPrefix(seg, ":") {
				paramNames = append(paramNames, seg[1:])
				pattern.WriteString(paramSegmentFragment)
				continue
			}
			pattern.WriteString(regexp.QuoteMeta(seg))
		}
	}

	pattern.WriteString("$")

	regex, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, err
	}

	return &Template{
		Source:     source,
		ParamNames: paramNames,
		regex:      regex,
	}, nil
}

// Match tests path against the compiled pattern with a full-string
// match. On success it returns the parameter map built by zipping
// ParamNames with the captured groups in order; templates without
// parameters yield an empty, non-nil map.
func (t *Template) Match(path string) (map[string]string, bool) {
	matches := t.regex.FindStringSubmatch(path)
	if matches == nil {
		return nil, false
	}

	params := make(map[string]string, len(t.ParamNames))
	for i, name := range t.ParamNames {
		params[name] = matches[i+1]
	}

	return params, true
}

// Pattern returns the compiled regular expression source.
func (t *Template) Pattern() string {
	return t.regex.String()
}
