package service

import (
	"sync"

	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
)

// AnalysisCache stores the last analysis result per document id. One slot
// per document: a later run overwrites the prior entry in place, no
// history is retained. The memo generator reads from here.
type AnalysisCache struct {
	mu      sync.RWMutex
	entries map[string]*domain.AnalysisResult
}

// NewAnalysisCache creates an empty AnalysisCache.
func NewAnalysisCache() *AnalysisCache {
	return &AnalysisCache{entries: make(map[string]*domain.AnalysisResult)}
}

// Put stores a result, replacing any prior entry for the document.
func (c *AnalysisCache) Put(documentID string, result *domain.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[documentID] = result
}

// Get returns the cached result, or ErrAnalysisNotFound. A cache miss is
// distinct from the document itself being unknown.
func (c *AnalysisCache) Get(documentID string) (*domain.AnalysisResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.entries[documentID]
	if !ok {
		return nil, domain.ErrAnalysisNotFound
	}
	return result, nil
}

// Len returns the number of cached entries.
func (c *AnalysisCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
