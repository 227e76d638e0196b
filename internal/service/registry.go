package service

import (
	"sync"
	"time"

	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
)

// DocumentRegistry records which documents exist and their extraction
// counts. Process-lifetime, shared across requests, owned by the host
// process and injected where needed.
type DocumentRegistry struct {
	mu   sync.RWMutex
	docs map[string]*domain.Document
}

// NewDocumentRegistry creates an empty DocumentRegistry.
func NewDocumentRegistry() *DocumentRegistry {
	return &DocumentRegistry{docs: make(map[string]*domain.Document)}
}

// Register records a document as successfully ingested. Re-registering the
// same id overwrites the prior record.
func (r *DocumentRegistry) Register(documentID, filename string, pageCount, chunkCount int) *domain.Document {
	doc := &domain.Document{
		ID:         documentID,
		Filename:   filename,
		Pages:      pageCount,
		Chunks:     chunkCount,
		UploadedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[documentID] = doc
	return doc
}

// Exists reports whether a document id has been registered.
func (r *DocumentRegistry) Exists(documentID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.docs[documentID]
	return ok
}

// Get returns the registered document, or ErrDocumentNotFound.
func (r *DocumentRegistry) Get(documentID string) (*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[documentID]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return doc, nil
}
