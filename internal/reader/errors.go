// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package reader

import (
	"errors"
	"fmt"
)

// ErrUnreadable is the read-failure kind. Every strategy reports a missing,
// inaccessible or undecodable file as an error matching it.
var ErrUnreadable = errors.New("file unreadable")

// FileReaderError describes a file that could not be read.
// Reader is empty when the error is the aggregate failure of a whole chain.
type FileReaderError struct {
	Path   string
	Reader string
	Err    error
}

func (e *FileReaderError) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := fmt.Sprintf("unable to read file %q", e.Path)
	if e.Reader != "" {
		msg += ": " + e.Reader
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *FileReaderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports every FileReaderError as ErrUnreadable
func (e *FileReaderError) Is(target error) bool {
	return target == ErrUnreadable
}

// Unreadable normalizes a strategy failure into a FileReaderError
func Unreadable(reader, path string, err error) error {
	return &FileReaderError{Path: path, Reader: reader, Err: err}
}
