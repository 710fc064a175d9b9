// Package scanner walks a document root and collects per-document metadata.
package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"
	"unicode/utf8"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/starford/nexus/internal/models"
	"github.com/starford/nexus/internal/parser"
	"github.com/starford/nexus/internal/storage"
	"github.com/starford/nexus/internal/tags"
)

// DefaultMaxDocuments bounds the number of documents collected per scan.
const DefaultMaxDocuments = 50

// DefaultExtensions selects Markdown documents.
var DefaultExtensions = []string{".md"}

// Options controls a scan.
type Options struct {
	MaxDocuments int
	Extensions   []string
	// Ignore holds gitignore-style patterns matched against root-relative paths.
	Ignore []string
}

// Scanner collects DocumentMeta records from a storage root.
type Scanner struct {
	store   storage.Provider
	max     int
	exts    []string
	ignored *ignore.GitIgnore
	logger  *slog.Logger
}

// New creates a Scanner over store.
func New(store storage.Provider, opts Options, logger *slog.Logger) *Scanner {
	s := &Scanner{
		store:  store,
		max:    opts.MaxDocuments,
		exts:   opts.Extensions,
		logger: loggerOrDefault(logger),
	}
	if s.max <= 0 {
		s.max = DefaultMaxDocuments
	}
	if len(s.exts) == 0 {
		s.exts = DefaultExtensions
	}
	if len(opts.Ignore) > 0 {
		s.ignored = ignore.CompileIgnoreLines(opts.Ignore...)
	}
	return s
}

// Scan walks the root depth-first, siblings in directory order, and returns
// metadata for every selected document until the document cap is reached.
// Hidden entries (names starting with a dot) are skipped along with
// everything below them.
// Only a failure to list the root itself is returned; unreadable
// subdirectories and documents are logged and skipped.
func (s *Scanner) Scan(ctx context.Context) ([]models.DocumentMeta, error) {
	var docs []models.DocumentMeta
	stack := []string{""}

	for len(stack) > 0 && len(docs) < s.max {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := s.store.ReadDir(dir)
		if err != nil {
			if dir == "" {
				return nil, fmt.Errorf("scanner: %w", err)
			}
			s.logger.Warn("scan: read dir failed", slog.String("dir", dir), slog.String("error", err.Error()))
			continue
		}

		var subdirs []string
		for _, e := range entries {
			rel := path.Join(dir, e.Name())
			if strings.HasPrefix(e.Name(), ".") {
				s.logger.Debug("scan: ignoring", slog.String("path", rel))
				continue
			}
			if e.IsDir() {
				subdirs = append(subdirs, rel)
				continue
			}
			if len(docs) >= s.max {
				break
			}
			if !slices.Contains(s.exts, path.Ext(rel)) {
				continue
			}
			if s.ignored != nil && s.ignored.MatchesPath(rel) {
				s.logger.Debug("scan: ignoring", slog.String("path", rel))
				continue
			}
			if doc, ok := s.document(rel); ok {
				docs = append(docs, doc)
			}
		}

		// Push in reverse so the first listed subdirectory is visited next.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	if len(stack) > 0 {
		s.logger.Info("scan: document cap reached", slog.Int("max", s.max))
	}
	return docs, nil
}

func (s *Scanner) document(rel string) (models.DocumentMeta, bool) {
	s.logger.Debug("scan: analyzing", slog.String("path", rel))

	data, err := s.store.Read(rel)
	if err != nil {
		s.logger.Warn("scan: read failed", slog.String("path", rel), slog.String("error", err.Error()))
		return models.DocumentMeta{}, false
	}
	if !utf8.Valid(data) {
		s.logger.Warn("scan: invalid encoding", slog.String("path", rel))
		return models.DocumentMeta{}, false
	}

	fm := parser.Extract(data)
	return models.DocumentMeta{
		Title:    parser.DeriveTitle(fm.Title, rel),
		FilePath: rel,
		Tags:     tags.Normalize(fm.Tags),
		Ignore:   fm.Ignore,
	}, true
}
