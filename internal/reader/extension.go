// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package reader

import (
	"fmt"
	"path/filepath"
	"strings"
)

type extensionReader struct {
	next Reader
	exts map[string]bool
}

// ForExtensions restricts r to files whose extension is one of exts.
// Any other file is reported as unreadable without being opened.
func ForExtensions(r Reader, exts ...string) Reader {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = true
	}
	return &extensionReader{next: r, exts: set}
}

func (e *extensionReader) Read(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !e.exts[ext] {
		return "", Unreadable("extension", path, fmt.Errorf("unsupported file type: %q", ext))
	}
	return e.next.Read(path)
}

// IsTemporaryFile checks if a file is a temporary file (e.g., ~$doc.docx)
func IsTemporaryFile(filePath string) bool {
	base := filepath.Base(filePath)
	if strings.HasPrefix(base, "~$") {
		return true
	}
	if strings.HasPrefix(base, "._") {
		return true
	}
	if strings.HasSuffix(base, ".tmp") {
		return true
	}
	return false
}
