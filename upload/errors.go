package upload

import (
	"fmt"
)

// Error is the type of the constant errors of this package
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNoFileProvided is returned when an upload has no file name or content
	ErrNoFileProvided Error = "No file uploaded"
	// ErrFileTooLarge is returned when an upload exceeds the configured limit
	ErrFileTooLarge Error = "File too large"
)

// UnsupportedFileTypeError is returned for files whose extension is not
// in any category
type UnsupportedFileTypeError struct {
	Ext string
}

// Error implements the error interface
func (e UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("Unsupported file type: %s", e.Ext)
}

// StorageError is returned when an upload could not be written
type StorageError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("could not store upload '%s': %s", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error
func (e *StorageError) Unwrap() error {
	return e.Err
}
