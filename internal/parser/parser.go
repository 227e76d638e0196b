// Package parser extracts page text from uploaded documents and splits it
// into retrievable passages.
package parser

import (
	"path/filepath"
	"strings"

	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
)

// Page is one extracted page of document text.
type Page struct {
	Number int
	Text   string
}

// ExtractPages extracts an ordered sequence of pages from raw file
// content, dispatching on the filename extension. PDF pages keep their
// page numbers; DOCX and XLSX collapse to a single page 1 because those
// formats carry no fixed pagination.
func ExtractPages(filename string, content []byte) ([]Page, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(content)
	case ".docx":
		return extractDOCX(content)
	case ".xlsx":
		return extractXLSX(content)
	default:
		return nil, domain.ErrUnsupportedFileType
	}
}
