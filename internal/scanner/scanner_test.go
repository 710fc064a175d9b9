package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/starford/nexus/internal/storage"
	"github.com/starford/nexus/internal/testutil"
)

// recordingStore records the directories listed through it.
type recordingStore struct {
	storage.Provider
	listed []string
}

func (r *recordingStore) ReadDir(dir string) ([]fs.DirEntry, error) {
	r.listed = append(r.listed, dir)
	return r.Provider.ReadDir(dir)
}

func paths(t *testing.T, opts Options, files map[string]string) []string {
	t.Helper()
	_, store := testutil.TestRoot(t, files)
	docs, err := New(store, opts, testutil.Logger()).Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.FilePath
	}
	sort.Strings(out)
	return out
}

func TestScan_RecursesAndSelectsMarkdown(t *testing.T) {
	got := paths(t, Options{}, map[string]string{
		"a.md":           "# a",
		"notes.txt":      "skip",
		"sub/b.md":       "# b",
		"sub/deep/c.md":  "# c",
		"sub/deep/d.MDX": "skip",
	})
	want := []string{"a.md", "sub/b.md", "sub/deep/c.md"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("paths = %v, want %v", got, want)
	}
}

func TestScan_ExtractsMetadata(t *testing.T) {
	_, store := testutil.TestRoot(t, map[string]string{
		"a.md":     "---\ntitle: Alpha\ntags: [\" X/Y \", Go]\n---\nbody",
		"plain.md": "no metadata here",
		"hide.md":  "---\ntags: meta\nignore: true\n---\n",
	})
	docs, err := New(store, Options{}, testutil.Logger()).Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	byPath := make(map[string]int, len(docs))
	for i, d := range docs {
		byPath[d.FilePath] = i
	}

	a := docs[byPath["a.md"]]
	if a.Title != "Alpha" || fmt.Sprint(a.Tags) != "[x/y go]" || a.Ignore {
		t.Errorf("a.md = %+v", a)
	}
	plain := docs[byPath["plain.md"]]
	if plain.Title != "plain" || len(plain.Tags) != 0 || plain.Ignore {
		t.Errorf("plain.md = %+v", plain)
	}
	hide := docs[byPath["hide.md"]]
	if !hide.Ignore || fmt.Sprint(hide.Tags) != "[meta]" {
		t.Errorf("hide.md = %+v", hide)
	}
}

func TestScan_CapEnforced(t *testing.T) {
	files := make(map[string]string, 200)
	for i := 0; i < 200; i++ {
		files[fmt.Sprintf("d%02d/n%03d.md", i%7, i)] = "# n"
	}
	got := paths(t, Options{}, files)
	if len(got) != DefaultMaxDocuments {
		t.Errorf("collected %d documents, want %d", len(got), DefaultMaxDocuments)
	}

	got = paths(t, Options{MaxDocuments: 3}, files)
	if len(got) != 3 {
		t.Errorf("collected %d documents, want 3", len(got))
	}
}

func TestScan_CapStopsDirectoryWalk(t *testing.T) {
	_, store := testutil.TestRoot(t, map[string]string{
		"a/1.md":   "",
		"b/2.md":   "",
		"c/d/3.md": "",
	})
	rec := &recordingStore{Provider: store}

	docs, err := New(rec, Options{MaxDocuments: 1}, testutil.Logger()).Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(docs) != 1 || docs[0].FilePath != "a/1.md" {
		t.Fatalf("docs = %+v", docs)
	}
	if fmt.Sprint(rec.listed) != "[ a]" {
		t.Errorf("listed dirs = %q, want root and a only", rec.listed)
	}
}

func TestScan_SkipsHidden(t *testing.T) {
	_, store := testutil.TestRoot(t, map[string]string{
		"note.md":          "",
		".trash/x.md":      "",
		".obsidian/y.md":   "",
		".z.md":            "",
		"sub/.git/HEAD.md": "",
		"sub/keep.md":      "",
	})
	rec := &recordingStore{Provider: store}

	docs, err := New(rec, Options{}, testutil.Logger()).Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	var got []string
	for _, d := range docs {
		got = append(got, d.FilePath)
	}
	sort.Strings(got)
	if fmt.Sprint(got) != "[note.md sub/keep.md]" {
		t.Errorf("paths = %v", got)
	}
	for _, dir := range rec.listed {
		if dir == ".trash" || dir == ".obsidian" || dir == "sub/.git" {
			t.Errorf("hidden directory %q was listed", dir)
		}
	}
}

func TestScan_IgnorePatterns(t *testing.T) {
	got := paths(t, Options{Ignore: []string{"drafts/", "*.tmp.md"}}, map[string]string{
		"keep.md":          "",
		"drafts/wip.md":    "",
		"old.tmp.md":       "",
		"sub/other.tmp.md": "",
		"sub/keep.md":      "",
	})
	want := []string{"keep.md", "sub/keep.md"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("paths = %v, want %v", got, want)
	}
}

func TestScan_CustomExtensions(t *testing.T) {
	got := paths(t, Options{Extensions: []string{".markdown"}}, map[string]string{
		"a.md":       "",
		"b.markdown": "",
	})
	if fmt.Sprint(got) != "[b.markdown]" {
		t.Errorf("paths = %v", got)
	}
}

func TestScan_InvalidEncodingSkipped(t *testing.T) {
	got := paths(t, Options{}, map[string]string{
		"ok.md":  "fine",
		"bad.md": "\xff\xfe\x00garbage",
	})
	if fmt.Sprint(got) != "[ok.md]" {
		t.Errorf("paths = %v", got)
	}
}

func TestScan_RootRemovedFails(t *testing.T) {
	root, store := testutil.TestRoot(t, nil)
	if err := os.Remove(root); err != nil {
		t.Fatal(err)
	}
	if _, err := New(store, Options{}, testutil.Logger()).Scan(context.Background()); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestScan_Cancelled(t *testing.T) {
	_, store := testutil.TestRoot(t, map[string]string{"a.md": ""})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(store, Options{}, testutil.Logger()).Scan(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

func TestScan_DeterministicOrder(t *testing.T) {
	root, store := testutil.TestRoot(t, map[string]string{
		"b.md": "", "a.md": "", "z/c.md": "", "y/d.md": "",
	})
	s := New(store, Options{}, testutil.Logger())
	first, _ := s.Scan(context.Background())
	second, _ := s.Scan(context.Background())
	if fmt.Sprint(first) != fmt.Sprint(second) {
		t.Errorf("scan order differs between runs in %s", filepath.Base(root))
	}
}

func TestLoadIgnoreFile(t *testing.T) {
	_, store := testutil.TestRoot(t, map[string]string{
		IgnoreFile: "# drafts\ndrafts/\n\n  *.bak.md  \r\n",
	})
	if got := LoadIgnoreFile(store); fmt.Sprint(got) != "[drafts/ *.bak.md]" {
		t.Errorf("lines = %q", got)
	}

	_, empty := testutil.TestRoot(t, nil)
	if got := LoadIgnoreFile(empty); got != nil {
		t.Errorf("missing file should yield nil, got %q", got)
	}
}

func TestLoadRootConfig(t *testing.T) {
	_, store := testutil.TestRoot(t, map[string]string{
		DefaultRootConfig: `{"ignore": ["drafts/", "*.bak.md"]}`,
		"broken.json":     `{"ignore": "not-a-list"`,
	})

	cfg := LoadRootConfig(store, DefaultRootConfig, testutil.Logger())
	if fmt.Sprint(cfg.Ignore) != "[drafts/ *.bak.md]" {
		t.Errorf("ignore = %v", cfg.Ignore)
	}
	if cfg := LoadRootConfig(store, "missing.json", testutil.Logger()); len(cfg.Ignore) != 0 {
		t.Errorf("missing config should be empty, got %v", cfg.Ignore)
	}
	if cfg := LoadRootConfig(store, "broken.json", testutil.Logger()); len(cfg.Ignore) != 0 {
		t.Errorf("broken config should be empty, got %v", cfg.Ignore)
	}
}
