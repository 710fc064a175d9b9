package scanner

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/starford/nexus/internal/storage"
)

// DefaultRootConfig is the name of the optional per-root configuration file.
const DefaultRootConfig = "nexus-odyssey.json"

// IgnoreFile is the optional gitignore-style file honored in the root.
const IgnoreFile = ".ignore"

// RootConfig is the optional JSON file stored next to the documents.
type RootConfig struct {
	// Ignore holds gitignore-style patterns relative to the root.
	Ignore []string `json:"ignore"`
}

// LoadRootConfig reads name from the root of store. A missing or malformed
// file yields an empty RootConfig.
func LoadRootConfig(store storage.Provider, name string, logger *slog.Logger) RootConfig {
	if name == "" {
		return RootConfig{}
	}
	data, err := store.Read(name)
	if err != nil {
		return RootConfig{}
	}
	var cfg RootConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		loggerOrDefault(logger).Debug("root config ignored",
			slog.String("file", name),
			slog.String("error", err.Error()))
		return RootConfig{}
	}
	return cfg
}

// LoadIgnoreFile returns the non-empty, non-comment lines of the root
// ignore file. A missing file yields nil.
func LoadIgnoreFile(store storage.Provider) []string {
	data, err := store.Read(IgnoreFile)
	if err != nil {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
