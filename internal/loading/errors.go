// Package loading reads the site configuration, ranking dictionary and
// bibliographies from disk.
package loading

import (
	"fmt"
	"io/fs"
)

// NotFoundError reports a required input file that does not exist.
type NotFoundError struct {
	Path  string
	Cause error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("required file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return fs.ErrNotExist
}

// LoadError represents an error during file I/O or decoding
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
