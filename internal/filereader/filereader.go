// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package filereader reads a file through an ordered list of reader
// strategies and parses the first content obtained.
package filereader

import (
	"errors"

	"github.com/northbound/filereader/internal/reader"
)

// Parser turns raw file content into a value
type Parser[T any] func(raw string) (T, error)

// Chain tries its readers in order and parses the first successful read.
// Only read failures (reader.ErrUnreadable) move on to the next reader;
// parse errors and any other reader error are returned as is.
type Chain[T any] struct {
	parse   Parser[T]
	readers []reader.Reader
}

// New creates a chain over readers, in precedence order
func New[T any](parse Parser[T], readers ...reader.Reader) *Chain[T] {
	return &Chain[T]{
		parse:   parse,
		readers: append([]reader.Reader(nil), readers...),
	}
}

// NewDefault creates a chain with the plain text reader only
func NewDefault[T any](parse Parser[T]) *Chain[T] {
	return New(parse, reader.Text)
}

// Read reads path and returns the parsed content.
// It fails with a *reader.FileReaderError naming path when every reader failed to read it.
func (c *Chain[T]) Read(path string) (T, error) {
	var zero T

	for _, r := range c.readers {
		raw, err := r.Read(path)
		if err != nil {
			if errors.Is(err, reader.ErrUnreadable) {
				continue
			}
			return zero, err
		}

		value, err := c.parse(raw)
		if err != nil {
			return zero, err
		}
		return value, nil
	}

	return zero, &reader.FileReaderError{Path: path}
}

// Len returns the number of readers in the chain
func (c *Chain[T]) Len() int {
	return len(c.readers)
}
