package parser

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/dslipak/pdf"
)

const pageExtractTimeout = 10 * time.Second

func extractPDF(content []byte) ([]Page, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var pages []Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, Page{Number: i, Text: ""})
			continue
		}

		text, err := protectExtract(page)
		if err != nil {
			// A malformed page should not sink the whole document.
			pages = append(pages, Page{Number: i, Text: ""})
			continue
		}
		pages = append(pages, Page{Number: i, Text: text})
	}
	return pages, nil
}

// protectExtract guards against extraction hanging on malformed content
// streams, which the underlying library is prone to.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		text string
		err  error
	}
	resChan := make(chan result, 1)

	go func() {
		text, err := page.GetPlainText(nil)
		resChan <- result{text, err}
	}()
	select {
	case r := <-resChan:
		return r.text, r.err
	case <-time.After(pageExtractTimeout):
		return "", errors.New("page extraction timed out")
	}
}
