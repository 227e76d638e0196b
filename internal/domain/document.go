package domain

import (
	"fmt"
	"time"
)

// Document records an ingested file and its extraction counts.
type Document struct {
	ID         string
	Filename   string
	Pages      int
	Chunks     int
	UploadedAt time.Time
}

// Chunk is a bounded passage of document text with page provenance, the
// atomic unit of retrieval. A chunk is created once at ingestion and never
// mutated; it is destroyed only when its document's collection is dropped.
type Chunk struct {
	ID         string
	DocumentID string
	Page       int
	Text       string
	Embedding  []float32
}

// ChunkID derives the stable chunk identifier from document id, page number
// and the chunk's sequence index within that page. Reproducible given the
// same chunking.
func ChunkID(documentID string, page, seq int) string {
	return fmt.Sprintf("%s_p%d_c%d", documentID, page, seq)
}

// ValidateDocument validates a Document instance
func ValidateDocument(d *Document) error {
	if d == nil {
		return fmt.Errorf("document cannot be nil")
	}
	if d.ID == "" {
		return fmt.Errorf("document ID is required")
	}
	if d.Filename == "" {
		return fmt.Errorf("document Filename is required")
	}
	if d.Pages < 0 {
		return fmt.Errorf("document Pages cannot be negative")
	}
	if d.Chunks < 0 {
		return fmt.Errorf("document Chunks cannot be negative")
	}
	return nil
}
