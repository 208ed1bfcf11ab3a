// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package reader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Excel renders every sheet of a workbook as text, one "Row N: Header: Value, ..." line per data row.
// The first row of a sheet is its header row.
var Excel Reader = ReaderFunc(readExcel)

func readExcel(filePath string) (string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return "", Unreadable("excel", filePath, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return "", Unreadable("excel", filePath, errors.New("no sheets found"))
	}

	var builder strings.Builder
	for sheetIdx, sheetName := range sheetList {
		if sheetIdx > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(fmt.Sprintf("Sheet: %s\n", sheetName))

		rows, err := f.GetRows(sheetName)
		if err != nil {
			// e.g. password protected sheet
			builder.WriteString(fmt.Sprintf("(Unable to read sheet %s: %v)\n", sheetName, err))
			continue
		}
		if len(rows) == 0 || len(rows[0]) == 0 {
			continue
		}

		headers := rows[0]
		for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
			if line := rowText(headers, rows[rowIdx]); line != "" {
				builder.WriteString(fmt.Sprintf("Row %d: %s\n", rowIdx+1, line))
			}
		}
	}

	result := strings.TrimSpace(builder.String())
	if result == "" {
		return "", Unreadable("excel", filePath, errors.New("no content extracted"))
	}

	return result, nil
}

func rowText(headers, row []string) string {
	parts := []string{}
	for colIdx, header := range headers {
		if colIdx >= len(row) {
			break
		}
		value := strings.TrimSpace(row[colIdx])
		if value == "" {
			continue
		}
		headerName := strings.TrimSpace(header)
		if headerName == "" {
			headerName = fmt.Sprintf("Column %d", colIdx+1)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", headerName, value))
	}
	return strings.Join(parts, ", ")
}
