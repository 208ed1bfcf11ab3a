// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package reader

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mnako/letters"
)

// Email extracts headers and body text from an EML file
var Email Reader = ReaderFunc(readEmail)

func readEmail(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", Unreadable("email", filePath, err)
	}
	defer file.Close()

	email, err := letters.ParseEmail(file)
	if err != nil {
		return "", Unreadable("email", filePath, err)
	}

	var builder strings.Builder

	if email.Headers.Subject != "" {
		builder.WriteString(fmt.Sprintf("Subject: %s\n", email.Headers.Subject))
	}

	if len(email.Headers.From) > 0 {
		from := email.Headers.From[0]
		sender := from.Address
		if from.Name != "" {
			sender = fmt.Sprintf("%s <%s>", from.Name, from.Address)
		}
		builder.WriteString(fmt.Sprintf("Sender: %s\n", sender))
	}

	if !email.Headers.Date.IsZero() {
		builder.WriteString(fmt.Sprintf("Date: %s\n", email.Headers.Date.Format(time.RFC3339)))
	}

	builder.WriteString("\n")

	// Prefer the text part, strip markup from the HTML part otherwise
	bodyText := email.Text
	if bodyText == "" && email.HTML != "" {
		bodyText, err = htmlText(strings.NewReader(email.HTML))
		if err != nil {
			return "", Unreadable("email", filePath, err)
		}
	}
	builder.WriteString(bodyText)

	result := strings.TrimSpace(builder.String())
	if result == "" {
		return "", Unreadable("email", filePath, errors.New("no content extracted"))
	}

	return result, nil
}
