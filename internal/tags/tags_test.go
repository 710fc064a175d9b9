package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("whitespace separated string", func(t *testing.T) {
		assert.Equal(t, []string{"lang/rust", "compiler"}, Normalize("  Lang/Rust \t Compiler\n"))
	})

	t.Run("sequence of strings", func(t *testing.T) {
		raw := []any{" Lang/Rust ", "", "COMPILER", 42, "  "}
		assert.Equal(t, []string{"lang/rust", "compiler"}, Normalize(raw))
	})

	t.Run("both shapes agree", func(t *testing.T) {
		assert.Equal(t, Normalize("a b/c"), Normalize([]any{"a", "b/c"}))
	})

	t.Run("string slice", func(t *testing.T) {
		assert.Equal(t, []string{"x"}, Normalize([]string{" X "}))
	})

	t.Run("slash is preserved", func(t *testing.T) {
		assert.Equal(t, []string{"a//b/"}, Normalize("a//b/"))
	})

	t.Run("absent or unsupported", func(t *testing.T) {
		assert.Empty(t, Normalize(nil))
		assert.Empty(t, Normalize(12))
		assert.Empty(t, Normalize(map[string]any{"a": "b"}))
	})
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Segments("/a//b"))
	assert.Equal(t, []string{"a", "b"}, Segments("a/b"))
	assert.Empty(t, Segments("/"))
	assert.Empty(t, Segments(""))
}

func TestResolve(t *testing.T) {
	t.Run("prefix merge", func(t *testing.T) {
		got := Resolve([]string{"rust/ownership", "lang", "lang/rust"})
		assert.Equal(t, map[string]string{
			"lang":           "/lang",
			"lang/rust":      "/lang/rust",
			"rust/ownership": "/lang/rust/ownership",
		}, got)
	})

	t.Run("unrelated tags stay top level", func(t *testing.T) {
		got := Resolve([]string{"go", "rust/ownership"})
		assert.Equal(t, "/go", got["go"])
		assert.Equal(t, "/rust/ownership", got["rust/ownership"])
	})

	t.Run("deeper tag extends exact prefix", func(t *testing.T) {
		got := Resolve([]string{"x/y/z", "x/y"})
		assert.Equal(t, "/x/y", got["x/y"])
		assert.Equal(t, "/x/y/z", got["x/y/z"])
	})

	t.Run("longest matching prefix wins", func(t *testing.T) {
		got := Resolve([]string{"a", "a/b", "a/b/c"})
		assert.Equal(t, "/a/b/c", got["a/b/c"])
	})

	t.Run("empty segments collapse", func(t *testing.T) {
		got := Resolve([]string{"/a//b", "a"})
		assert.Equal(t, "/a", got["a"])
		assert.Equal(t, "/a/b", got["/a//b"])
	})

	t.Run("degenerate tag is total", func(t *testing.T) {
		got := Resolve([]string{"/", ""})
		assert.Equal(t, "/", got["/"])
		assert.Equal(t, "/", got[""])
	})

	t.Run("duplicates and input order do not matter", func(t *testing.T) {
		a := Resolve([]string{"lang/rust", "lang", "rust/ownership", "lang"})
		b := Resolve([]string{"lang", "rust/ownership", "lang/rust"})
		assert.Equal(t, a, b)
	})

	t.Run("segment aligned suffix only", func(t *testing.T) {
		got := Resolve([]string{"golang", "lang/x"})
		assert.Equal(t, "/lang/x", got["lang/x"])
	})

	// Shortest-first is only an approximation of shallowest-first: here the
	// deeper "b/c" is processed before "a/b" and never gets nested under it.
	t.Run("known limitation of length ordering", func(t *testing.T) {
		got := Resolve([]string{"b/c", "aa/b"})
		assert.Equal(t, "/b/c", got["b/c"])
		assert.Equal(t, "/aa/b", got["aa/b"])
	})
}

func TestAncestors(t *testing.T) {
	assert.Equal(t, []string{"/a", "/a/b", "/a/b/c"}, Ancestors("/a/b/c"))
	assert.Empty(t, Ancestors("/"))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "/a/b/c", Join("/a", "b", "c"))
	assert.Equal(t, "/a", Join("/a"))
	assert.Equal(t, "/b", Join("/", "b"))
}
