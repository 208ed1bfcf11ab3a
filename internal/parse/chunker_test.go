// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package parse

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func newDefaultChunker(t *testing.T) *Chunker {
	t.Helper()
	chunker, err := NewChunker(DefaultChunkSize, DefaultChunkOverlap)
	if err != nil {
		t.Fatalf("NewChunker failed: %v", err)
	}
	return chunker
}

func TestChunker_ShortText(t *testing.T) {
	chunker := newDefaultChunker(t)
	text := "This is a short text that should not be split."

	chunks, err := chunker.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk for short text, got %d", len(chunks))
	}

	if chunks[0] != text {
		t.Errorf("Chunk content mismatch. Expected: %q, Got: %q", text, chunks[0])
	}
}

func TestChunker_LongText(t *testing.T) {
	chunker := newDefaultChunker(t)
	// ~3800 characters, several chunks
	paragraph := "This is a sample paragraph. It contains multiple sentences. Each sentence ends with a period. "
	text := strings.Repeat(paragraph, 40)

	chunks, err := chunker.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(chunks) < 2 {
		t.Fatalf("Expected at least 2 chunks for long text, got %d", len(chunks))
	}

	for i, chunk := range chunks {
		if len(chunk) > DefaultChunkSize {
			t.Errorf("Chunk %d is %d characters, larger than %d", i, len(chunk), DefaultChunkSize)
		}
	}

	if !strings.HasPrefix(text, chunks[0]) {
		t.Error("First chunk should start the text")
	}
	if !strings.HasSuffix(strings.TrimSpace(text), chunks[len(chunks)-1]) {
		t.Error("Last chunk should end the text")
	}
}

func TestChunker_SentenceBoundaries(t *testing.T) {
	chunker := newDefaultChunker(t)
	text := strings.Repeat("This is sentence one. This is sentence two. This is sentence three. ", 50)

	chunks, err := chunker.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for i, chunk := range chunks {
		if !strings.HasSuffix(chunk, ".") {
			t.Errorf("Chunk %d does not end on a sentence boundary: ...%q", i, chunk[len(chunk)-20:])
		}
	}
}

func TestChunker_NoBoundaries(t *testing.T) {
	chunker, err := NewChunker(10, 3)
	if err != nil {
		t.Fatalf("NewChunker failed: %v", err)
	}

	chunks, err := chunker.Parse(strings.Repeat("x", 25))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// starts at 0, 7, 14, 21
	if len(chunks) != 4 {
		t.Fatalf("Expected 4 chunks, got %d: %q", len(chunks), chunks)
	}
	if len(chunks[3]) != 4 {
		t.Errorf("Expected last chunk of 4 characters, got %q", chunks[3])
	}
}

func TestChunker_AlwaysProgresses(t *testing.T) {
	chunker, err := NewChunker(5, 4)
	if err != nil {
		t.Fatalf("NewChunker failed: %v", err)
	}

	// a sentence end right after every chunk start pulls end back to start+2
	text := strings.Repeat("a. ", 20)

	chunks, err := chunker.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(chunks) == 0 || len(chunks) > len(text) {
		t.Errorf("Unexpected chunk count %d", len(chunks))
	}
}

func TestChunker_MultiByteText(t *testing.T) {
	chunker, err := NewChunker(10, 3)
	if err != nil {
		t.Fatalf("NewChunker failed: %v", err)
	}

	for _, text := range []string{
		strings.Repeat("é", 20),
		strings.Repeat("日本語", 9),
		"ab" + strings.Repeat("😀", 8) + ". done",
	} {
		chunks, err := chunker.Parse(text)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(chunks) < 2 {
			t.Fatalf("Expected several chunks for %q, got %d", text, len(chunks))
		}
		for i, chunk := range chunks {
			if !utf8.ValidString(chunk) {
				t.Errorf("Chunk %d of %q is not valid UTF-8: %q", i, text, chunk)
			}
		}
		if !strings.HasPrefix(text, chunks[0]) || !strings.HasSuffix(text, chunks[len(chunks)-1]) {
			t.Errorf("Chunks of %q do not cover both ends: %q", text, chunks)
		}
	}
}

func TestChunker_RuneWiderThanChunk(t *testing.T) {
	chunker, err := NewChunker(2, 1)
	if err != nil {
		t.Fatalf("NewChunker failed: %v", err)
	}

	chunks, err := chunker.Parse("😀😀")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if strings.Join(chunks, "") != "😀😀" {
		t.Errorf("Expected one chunk per rune, got %q", chunks)
	}
}

func TestChunker_EmptyText(t *testing.T) {
	chunker := newDefaultChunker(t)

	chunks, err := chunker.Parse("")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(chunks) != 0 {
		t.Errorf("Expected 0 chunks for empty text, got %d", len(chunks))
	}
}

func TestNewChunker_RejectsBadSettings(t *testing.T) {
	for _, tc := range [][2]int{{0, 0}, {-1, 0}, {10, 10}, {10, -1}} {
		if _, err := NewChunker(tc[0], tc[1]); err == nil {
			t.Errorf("Expected error for size=%d overlap=%d", tc[0], tc[1])
		}
	}
}
