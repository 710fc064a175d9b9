package tags

import (
	"slices"
	"strings"
)

// Resolve assigns every distinct tag an absolute path in the topic
// hierarchy.
//
// Tags are processed shortest first. For a tag with segments s1..sn the
// longest leading run s1..si that already terminates some resolved path P is
// searched; the tag then resolves to P followed by the remaining segments
// si+1..sn. Without such a match the tag becomes the top-level path /s1/../sn.
// This lets "rust/ownership" land under "/lang/rust" once "lang/rust" has been
// seen. The heuristic is order dependent and can merge unrelated topics that
// share a leading segment.
func Resolve(tags []string) map[string]string {
	distinct := slices.Clone(tags)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)
	slices.SortStableFunc(distinct, func(a, b string) int {
		return len(a) - len(b)
	})

	resolved := make(map[string]string, len(distinct))
	// order keeps resolved paths in insertion order so the first path to
	// claim a suffix wins on ties.
	order := make([]string, 0, len(distinct))

	for _, tag := range distinct {
		segs := Segments(tag)
		path := Separator + strings.Join(segs, Separator)
		for i := len(segs); i > 0; i-- {
			if base, ok := findSuffix(order, segs[:i]); ok {
				path = Join(base, segs[i:]...)
				break
			}
		}
		resolved[tag] = path
		order = append(order, path)
	}
	return resolved
}

// findSuffix returns the first path in order whose trailing segments equal
// segs.
func findSuffix(order []string, segs []string) (string, bool) {
	suffix := Separator + strings.Join(segs, Separator)
	for _, p := range order {
		if strings.HasSuffix(p, suffix) {
			return p, true
		}
	}
	return "", false
}

// Join appends segments to an absolute path.
func Join(base string, segs ...string) string {
	if len(segs) == 0 {
		return base
	}
	return strings.TrimSuffix(base, Separator) + Separator + strings.Join(segs, Separator)
}

// Ancestors returns every prefix of an absolute path from the root-most
// level down to path itself: "/a/b/c" yields [/a /a/b /a/b/c].
func Ancestors(path string) []string {
	segs := Segments(path)
	out := make([]string, len(segs))
	for i := range segs {
		out[i] = Separator + strings.Join(segs[:i+1], Separator)
	}
	return out
}
