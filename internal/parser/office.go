package parser

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/lu4p/cat"
	"github.com/xuri/excelize/v2"
)

func extractDOCX(content []byte) ([]Page, error) {
	// cat dispatches on the file extension, so stage the upload in a
	// temp file before extraction.
	tmp, err := os.CreateTemp("", "upload-*.docx")
	if err != nil {
		return nil, fmt.Errorf("failed to stage docx: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to stage docx: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to stage docx: %w", err)
	}

	text, err := cat.File(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to extract docx: %w", err)
	}

	return []Page{{Number: 1, Text: text}}, nil
}

func extractXLSX(content []byte) ([]Page, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	var sections []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}

		var lines []string
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		sections = append(sections, fmt.Sprintf("--- Sheet: %s ---\n%s", sheet, strings.Join(lines, "\n")))
	}

	return []Page{{Number: 1, Text: strings.Join(sections, "\n\n")}}, nil
}
