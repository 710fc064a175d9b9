// Package models defines the domain types for Nexus.
package models

// DocumentMeta is the metadata collected for one scanned document.
type DocumentMeta struct {
	Title    string   `json:"title"`
	FilePath string   `json:"file_path"`
	Tags     []string `json:"tags"`
	Ignore   bool     `json:"ignore"`
}

// FrontMatter is the decoded leading metadata block of a document.
// Tags holds the raw YAML value: a string, a sequence, or nil.
type FrontMatter struct {
	Title  string `yaml:"title"`
	Tags   any    `yaml:"tags"`
	Ignore bool   `yaml:"ignore"`
}
