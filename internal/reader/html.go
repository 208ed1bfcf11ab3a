// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package reader

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTML extracts visible text from an HTML file, removing script and style tags
var HTML Reader = ReaderFunc(readHTML)

func readHTML(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", Unreadable("html", filePath, err)
	}
	defer file.Close()

	text, err := htmlText(file)
	if err != nil {
		return "", Unreadable("html", filePath, err)
	}
	if text == "" {
		return "", Unreadable("html", filePath, errors.New("no text extracted"))
	}

	return text, nil
}

// htmlText parses markup and returns its text content, whitespace runs
// collapsed to single spaces and blank lines dropped
func htmlText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if words := strings.Fields(line); len(words) > 0 {
			lines = append(lines, strings.Join(words, " "))
		}
	}

	return strings.Join(lines, "\n"), nil
}
