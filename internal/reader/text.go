// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package reader

import (
	"errors"
	"os"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// Text reads plain text files (.txt, .md, or anything else that decodes as UTF-8)
var Text Reader = ReaderFunc(readText)

func readText(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", Unreadable("text", filePath, err)
	}

	if !utf8.Valid(content) {
		return "", Unreadable("text", filePath, errInvalidUTF8)
	}

	return string(content), nil
}
