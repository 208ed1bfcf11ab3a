// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200

	// sentence boundaries are searched for in the tail of each chunk
	boundaryWindow = 200
)

// Chunker handles text chunking with sentence-aware splitting
type Chunker struct {
	chunkSize    int
	chunkOverlap int
}

// NewChunker creates a chunker producing chunks of about size characters,
// consecutive chunks sharing overlap characters
func NewChunker(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap must be in [0, %d), got %d", size, overlap)
	}
	return &Chunker{chunkSize: size, chunkOverlap: overlap}, nil
}

// Parse splits text into overlapping chunks, trying to avoid cutting sentences
func (c *Chunker) Parse(text string) ([]string, error) {
	if len(text) == 0 {
		return []string{}, nil
	}

	var chunks []string
	start := 0
	textLen := len(text)

	for start < textLen {
		end := start + c.chunkSize
		if end > textLen {
			end = textLen
		}

		if end < textLen {
			end = c.boundary(text, start, end)
			end = runeStart(text, start, end)
		}

		chunk := strings.TrimSpace(text[start:end])
		if len(chunk) > 0 {
			chunks = append(chunks, chunk)
		}

		if end >= textLen {
			break
		}

		next := runeStart(text, start, end-c.chunkOverlap)
		// always make progress
		if next <= start {
			next = end
		}
		start = next
	}

	return chunks, nil
}

// boundary moves end back to the last sentence ending or paragraph break
// found in the window before it
func (c *Chunker) boundary(text string, start, end int) int {
	searchStart := end - boundaryWindow
	if searchStart < start {
		searchStart = start
	}

	for i := end - 1; i >= searchStart; i-- {
		if i+1 >= len(text) {
			continue
		}
		char, nextChar := text[i], text[i+1]
		if (char == '.' || char == '!' || char == '?') && (nextChar == ' ' || nextChar == '\n' || nextChar == '\r') {
			return i + 1
		}
		if char == '\n' && nextChar == '\n' {
			return i + 2
		}
	}

	return end
}

// runeStart moves i back to the first byte of the rune containing it.
// If that would reach lo, i moves forward to the next rune start instead.
func runeStart(text string, lo, i int) int {
	if i <= lo {
		return i
	}
	j := i
	for j > lo && j < len(text) && !utf8.RuneStart(text[j]) {
		j--
	}
	if j > lo {
		return j
	}
	for i < len(text) && !utf8.RuneStart(text[i]) {
		i++
	}
	return i
}
