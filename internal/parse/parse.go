// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package parse holds ready-made parsing functions for a filereader.Chain.
package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/northbound/filereader/internal/filereader"
)

// Raw returns the content unchanged
func Raw(raw string) (string, error) {
	return raw, nil
}

// Lines splits content on newlines. A trailing newline does not produce an empty last line.
func Lines(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	raw = strings.TrimSuffix(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	return strings.Split(raw, "\n"), nil
}

// JSON decodes a single JSON document
func JSON(raw string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return v, nil
}

// YAML decodes a single YAML document. Mapping keys are converted to strings
// so the result has the same shape as decoded JSON.
func YAML(raw string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return stringKeys(v), nil
}

func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = stringKeys(item)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, item := range t {
			m[fmt.Sprint(k)] = stringKeys(item)
		}
		return m
	case []any:
		for i, item := range t {
			t[i] = stringKeys(item)
		}
		return t
	default:
		return v
	}
}

// Options configures the parsers that need settings
type Options struct {
	ChunkSize    int
	ChunkOverlap int
}

// Names lists the parsers known to Lookup, sorted
func Names() []string {
	return []string{"chunks", "json", "lines", "raw", "yaml"}
}

// Lookup returns the named parser with its result boxed as any
func Lookup(name string, opts Options) (filereader.Parser[any], error) {
	switch name {
	case "raw":
		return boxed(Raw), nil
	case "lines":
		return boxed(Lines), nil
	case "json":
		return JSON, nil
	case "yaml":
		return YAML, nil
	case "chunks":
		chunker, err := NewChunker(opts.ChunkSize, opts.ChunkOverlap)
		if err != nil {
			return nil, err
		}
		return boxed(chunker.Parse), nil
	default:
		return nil, fmt.Errorf("unknown parser %q (available: %v)", name, Names())
	}
}

func boxed[T any](parse func(string) (T, error)) filereader.Parser[any] {
	return func(raw string) (any, error) {
		v, err := parse(raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
