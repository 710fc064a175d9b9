// Package analysis runs the Markdown knowledge-graph pipeline and implements
// the file-opening contract used by the shells.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/starford/nexus/internal/apperr"
	"github.com/starford/nexus/internal/checksum"
	"github.com/starford/nexus/internal/dot"
	"github.com/starford/nexus/internal/graph"
	"github.com/starford/nexus/internal/scanner"
	"github.com/starford/nexus/internal/storage"
)

// DefaultCacheFile is written into the analyzed root after each analysis.
const DefaultCacheFile = "analysis.json"

// Options configures a Service.
type Options struct {
	Scan scanner.Options
	// RootConfig names the optional JSON file in the root holding extra
	// ignore patterns. Empty disables it.
	RootConfig string
	// CacheFile is the root-relative file the result is copied to when
	// WriteCache is set.
	CacheFile  string
	WriteCache bool
}

// Service analyzes document roots. It holds no state between calls.
type Service struct {
	opts   Options
	logger *slog.Logger
}

// NewService creates a new analysis service.
func NewService(opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.WriteCache && opts.CacheFile == "" {
		opts.CacheFile = DefaultCacheFile
	}
	return &Service{opts: opts, logger: logger}
}

// WithoutCache returns a copy of s that never writes the cache file.
func (s *Service) WithoutCache() *Service {
	opts := s.opts
	opts.WriteCache = false
	return &Service{opts: opts, logger: s.logger}
}

// Analyze scans root and returns the serialized knowledge graph. Only an
// unreadable root or a serialization failure is returned as an error; a
// failed cache write is logged.
func (s *Service) Analyze(ctx context.Context, root string) (string, error) {
	store, err := storage.NewFS(root)
	if err != nil {
		return "", fmt.Errorf("analysis: %w", err)
	}
	logger := s.logger.With(slog.String("root", store.Root()))

	rootCfg := scanner.LoadRootConfig(store, s.opts.RootConfig, logger)
	scanOpts := s.opts.Scan
	scanOpts.Ignore = append(slices.Clone(scanOpts.Ignore), rootCfg.Ignore...)
	scanOpts.Ignore = append(scanOpts.Ignore, scanner.LoadIgnoreFile(store)...)

	docs, err := scanner.New(store, scanOpts, logger).Scan(ctx)
	if err != nil {
		return "", fmt.Errorf("analysis: %w", err)
	}

	g := graph.Build(docs)
	out, err := graph.Serialize(g)
	if err != nil {
		return "", fmt.Errorf("analysis: %w", err)
	}

	if s.opts.WriteCache {
		if err := store.Write(s.opts.CacheFile, []byte(out)); err != nil {
			logger.Warn("analysis: cache write failed",
				slog.String("file", s.opts.CacheFile),
				slog.String("error", err.Error()))
		}
	}

	logger.Info("analysis complete",
		slog.Int("documents", len(docs)),
		slog.Int("nodes", g.NodeCount()),
		slog.Int("links", g.LinkCount()),
		slog.String("checksum", checksum.Sum([]byte(out))))
	return out, nil
}

// Open returns renderer JSON for a graph file: JSON files are returned
// verbatim and DOT files are converted. Other types fail with
// apperr.ErrUnsupportedFileType.
func (s *Service) Open(_ context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", openErr(path, err)
		}
		return string(data), nil
	case ".dot", ".gv":
		if _, err := os.Stat(path); err != nil {
			return "", openErr(path, err)
		}
		out, err := dot.ConvertFile(path)
		if err != nil {
			return "", fmt.Errorf("analysis: open %s: %w", path, err)
		}
		return out, nil
	default:
		return "", fmt.Errorf("analysis: open %s: %w", path, apperr.ErrUnsupportedFileType)
	}
}

func openErr(path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("analysis: open %s: %w", path, apperr.ErrNotFound)
	}
	return fmt.Errorf("analysis: open %s: %w", path, err)
}
