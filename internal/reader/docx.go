// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package reader

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DOCX extracts the document body text from a Word file
var DOCX Reader = ReaderFunc(readDOCX)

func readDOCX(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", Unreadable("docx", filePath, err)
	}
	defer doc.Close()

	text, err := documentText(doc.Editable().GetContent())
	if err != nil {
		return "", Unreadable("docx", filePath, err)
	}
	if text == "" {
		return "", Unreadable("docx", filePath, errors.New("no text extracted"))
	}

	return text, nil
}

// documentText keeps the character data of <w:t> runs from WordprocessingML,
// one line per <w:p> paragraph
func documentText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var builder strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				builder.WriteString("\t")
			case "br":
				builder.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				builder.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				builder.Write(t)
			}
		}
	}

	return strings.TrimSpace(builder.String()), nil
}
