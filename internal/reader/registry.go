// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package reader

import (
	"fmt"
	"sort"
)

// registry maps configuration names to strategies. Format readers are
// registered behind their extensions so a chain routes files the way the
// extension dispatcher used to.
var registry = map[string]Reader{
	"text":  Text,
	"pdf":   ForExtensions(PDF, ".pdf"),
	"docx":  ForExtensions(DOCX, ".docx"),
	"excel": ForExtensions(Excel, ".xlsx", ".xls"),
	"html":  ForExtensions(HTML, ".html", ".htm"),
	"email": ForExtensions(Email, ".eml"),
}

// DefaultOrder is the precedence used when no readers are configured.
// Text is last: it accepts any UTF-8 file.
var DefaultOrder = []string{"pdf", "docx", "excel", "html", "email", "text"}

// Lookup returns the registered reader for name
func Lookup(name string) (Reader, error) {
	r, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown reader %q (available: %v)", name, Names())
	}
	return r, nil
}

// LookupAll resolves names in order
func LookupAll(names []string) ([]Reader, error) {
	readers := make([]Reader, 0, len(names))
	for _, name := range names {
		r, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		readers = append(readers, r)
	}
	return readers, nil
}

// Names lists the registered reader names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
