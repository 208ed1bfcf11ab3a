// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package reader

// Reader is a strategy that extracts raw text from a file.
// A file the strategy cannot handle is reported as ErrUnreadable.
type Reader interface {
	// Read returns the full textual content of the file at path
	Read(path string) (string, error)
}

// ReaderFunc adapts a plain function to the Reader interface
type ReaderFunc func(path string) (string, error)

// Read calls f(path)
func (f ReaderFunc) Read(path string) (string, error) {
	return f(path)
}
