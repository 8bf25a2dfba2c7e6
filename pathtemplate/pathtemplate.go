// Package pathtemplate expands route paths containing named placeholders
// such as "/activate/:userId/:token/".
//
// A placeholder starts a path segment with ':' followed by letters, digits or
// underscores. A trailing '?' marks the placeholder optional; an optional
// placeholder without a value drops its whole segment. A placeholder fills
// its whole segment: ":name.json" is malformed and Expand rejects it.
package pathtemplate

import (
	"fmt"
	"net/url"
	"strings"
)

// MissingParameterError is returned when a required placeholder has no value.
type MissingParameterError struct {
	Name     string
	Template string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing path parameter %q for template %q", e.Name, e.Template)
}

// MalformedPlaceholderError is returned when a segment starts with ':' but is
// not a valid placeholder.
type MalformedPlaceholderError struct {
	Segment  string
	Template string
}

func (e *MalformedPlaceholderError) Error() string {
	return fmt.Sprintf("malformed placeholder %q in template %q", e.Segment, e.Template)
}

type segment struct {
	literal   string
	name      string
	optional  bool
	malformed bool
}

func (s segment) isParam() bool {
	return s.name != ""
}

func parse(template string) []segment {
	parts := strings.Split(template, "/")
	segs := make([]segment, 0, len(parts))
	for _, p := range parts {
		name, optional, ok := placeholder(p)
		if !ok {
			segs = append(segs, segment{literal: p, malformed: len(p) > 1 && p[0] == ':'})

			continue
		}
		segs = append(segs, segment{name: name, optional: optional})
	}

	return segs
}

func placeholder(part string) (name string, optional, ok bool) {
	if !strings.HasPrefix(part, ":") {
		return "", false, false
	}
	name = part[1:]
	if strings.HasSuffix(name, "?") {
		name = strings.TrimSuffix(name, "?")
		optional = true
	}
	if name == "" {
		return "", false, false
	}
	for _, r := range name {
		if !validNameRune(r) {
			return "", false, false
		}
	}

	return name, optional, true
}

func validNameRune(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// Expand substitutes params into template. Values are path escaped and
// params without a matching placeholder are ignored.
func Expand(template string, params map[string]string) (string, error) {
	segs := parse(template)
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		if s.malformed {
			return "", &MalformedPlaceholderError{Segment: s.literal, Template: template}
		}
		if !s.isParam() {
			out = append(out, s.literal)

			continue
		}

		v, ok := params[s.name]
		if !ok || v == "" {
			if s.optional {
				continue
			}

			return "", &MissingParameterError{Name: s.name, Template: template}
		}
		out = append(out, url.PathEscape(v))
	}

	return strings.Join(out, "/"), nil
}

// Placeholders returns the placeholder names of template in order.
func Placeholders(template string) []string {
	var names []string
	for _, s := range parse(template) {
		if s.isParam() {
			names = append(names, s.name)
		}
	}

	return names
}

// Required returns the names of the non-optional placeholders of template.
func Required(template string) []string {
	var names []string
	for _, s := range parse(template) {
		if s.isParam() && !s.optional {
			names = append(names, s.name)
		}
	}

	return names
}

// ChiPattern converts template into a chi routing pattern, e.g.
// "/books/:bookId/" becomes "/books/{bookId}/". Optional placeholders are
// mounted as required ones.
func ChiPattern(template string) string {
	segs := parse(template)
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		if s.isParam() {
			out = append(out, "{"+s.name+"}")

			continue
		}
		out = append(out, s.literal)
	}

	return strings.Join(out, "/")
}
