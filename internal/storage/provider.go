// Package storage confines file access to a single document root.
package storage

import "io/fs"

// Provider is the interface for document-root file operations.
// All paths are relative to the root and use forward slashes.
type Provider interface {
	// Root returns the absolute path of the document root.
	Root() string
	// ReadDir lists the entries of dir in directory order.
	ReadDir(dir string) ([]fs.DirEntry, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically replaces the file at path with content.
	Write(path string, content []byte) error
}
