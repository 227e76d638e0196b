package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
	"github.com/faisalmelhim/AI-Hackathon/internal/parser"
	"github.com/faisalmelhim/AI-Hackathon/internal/telemetry"
)

// IngestIndex is the chunk index surface ingestion consumes.
type IngestIndex interface {
	Upsert(ctx context.Context, documentID string, texts []string, pages []int, ids []string, embedder Embedder) error
}

// IngestRegistry records documents after successful indexing.
type IngestRegistry interface {
	Register(documentID, filename string, pageCount, chunkCount int) *domain.Document
}

// IngestService turns an uploaded file into an indexed, registered
// document: extract page text, chunk it, embed and upsert the chunks.
type IngestService struct {
	index    IngestIndex
	registry IngestRegistry
	embedder Embedder
}

// NewIngestService creates a new IngestService instance.
func NewIngestService(index IngestIndex, registry IngestRegistry, embedder Embedder) *IngestService {
	return &IngestService{
		index:    index,
		registry: registry,
		embedder: embedder,
	}
}

// Ingest processes one uploaded file and returns the registered document.
// Blank pages are skipped; a document yielding zero chunks is rejected.
func (s *IngestService) Ingest(ctx context.Context, filename string, content []byte) (*domain.Document, error) {
	documentID := uuid.NewString()

	ctx, span := telemetry.StartSpan(ctx, "ingest.document", telemetry.SpanAttributes{
		DocumentID: documentID,
		Operation:  "ingest",
	})
	defer span.End()

	pages, err := parser.ExtractPages(filename, content)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	var texts []string
	var pageNums []int
	var ids []string
	for _, page := range pages {
		if strings.TrimSpace(page.Text) == "" {
			continue
		}
		for i, chunk := range parser.ChunkText(page.Text, parser.DefaultChunkSize) {
			texts = append(texts, chunk)
			pageNums = append(pageNums, page.Number)
			ids = append(ids, domain.ChunkID(documentID, page.Number, i))
		}
	}

	if len(texts) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	if err := s.index.Upsert(ctx, documentID, texts, pageNums, ids, s.embedder); err != nil {
		span.SetError(err)
		return nil, err
	}

	return s.registry.Register(documentID, filename, len(pages), len(texts)), nil
}
