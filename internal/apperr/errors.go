package apperr

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrNotDirectory        = errors.New("not a directory")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
