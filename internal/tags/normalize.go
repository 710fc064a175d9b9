// Package tags normalizes front matter tags and positions them in the
// global topic hierarchy.
package tags

import "strings"

// Separator delimits hierarchy levels inside a tag.
const Separator = "/"

// Normalize turns a raw front matter tags value into an ordered list of
// trimmed, lower-cased, non-empty tags. A string is split on whitespace;
// a sequence contributes its string elements. The hierarchy separator is
// left untouched.
func Normalize(raw any) []string {
	var fields []string
	switch v := raw.(type) {
	case string:
		fields = strings.Fields(v)
	case []string:
		fields = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				fields = append(fields, s)
			}
		}
	default:
		return nil
	}

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Segments splits a tag or path on Separator, dropping empty segments, so
// "/a//b" and "a/b" both yield [a b].
func Segments(tag string) []string {
	parts := strings.Split(tag, Separator)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
