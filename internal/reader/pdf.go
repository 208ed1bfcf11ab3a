// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package reader

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// PDF extracts text from a PDF file using go-fitz (MuPDF)
// API reference: https://pkg.go.dev/github.com/gen2brain/go-fitz
var PDF Reader = ReaderFunc(readPDF)

func readPDF(filePath string) (string, error) {
	doc, err := fitz.New(filePath)
	if err != nil {
		return "", Unreadable("pdf", filePath, err)
	}
	defer doc.Close()

	var textBuilder strings.Builder
	numPages := doc.NumPage()

	for i := 0; i < numPages; i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			// skip the page, keep the rest of the document
			continue
		}
		textBuilder.WriteString(pageText)
		if i < numPages-1 {
			textBuilder.WriteString("\n\n")
		}
	}

	extractedText := strings.TrimSpace(textBuilder.String())
	if extractedText == "" {
		return "", Unreadable("pdf", filePath, fmt.Errorf("no text extracted from %d pages", numPages))
	}

	return extractedText, nil
}
