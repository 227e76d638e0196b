package service

import (
	"context"
	"strings"
	"sync"

	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
	"github.com/faisalmelhim/AI-Hackathon/internal/telemetry"
)

// DefaultTopK is the retrieval breadth used when a request does not name one.
const DefaultTopK = 12

// AnalysisRegistry is the registry surface the orchestrator consumes. It
// checks existence before analysis; it never registers documents itself.
type AnalysisRegistry interface {
	Exists(documentID string) bool
}

// AnalysisRetriever is the chunk index surface the orchestrator consumes.
type AnalysisRetriever interface {
	TopK(ctx context.Context, documentID, query string, k int, embedder Embedder) ([]RetrievedChunk, error)
}

// AnalysisGenerator produces a structured analysis from retrieved chunks.
type AnalysisGenerator interface {
	Analyze(ctx context.Context, chunks []RetrievedChunk, instructions string) (*domain.AnalysisResult, error)
}

// ComplianceScreener classifies retrieved text and the generated analysis.
type ComplianceScreener interface {
	Screen(texts []string, analysis *domain.AnalysisResult) domain.ComplianceFinding
}

// AnalysisService orchestrates retrieval, structured generation and
// compliance screening into one analysis result per document, cached in a
// single slot per document id.
type AnalysisService struct {
	registry  AnalysisRegistry
	retriever AnalysisRetriever
	generator AnalysisGenerator
	screener  ComplianceScreener
	embedder  Embedder
	cache     *AnalysisCache

	// Concurrent analyses of the same document race on the cache slot
	// and must be serialized; different documents stay independent.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewAnalysisService creates a new AnalysisService instance.
func NewAnalysisService(
	registry AnalysisRegistry,
	retriever AnalysisRetriever,
	generator AnalysisGenerator,
	screener ComplianceScreener,
	embedder Embedder,
	cache *AnalysisCache,
) *AnalysisService {
	return &AnalysisService{
		registry:  registry,
		retriever: retriever,
		generator: generator,
		screener:  screener,
		embedder:  embedder,
		cache:     cache,
		locks:     make(map[string]*sync.Mutex),
	}
}

func (s *AnalysisService) documentLock(documentID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[documentID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[documentID] = lock
	}
	return lock
}

// Analyze runs the full pipeline for one document and caches the result.
// Re-running overwrites the prior entry; a failure partway through leaves
// the cache untouched.
func (s *AnalysisService) Analyze(ctx context.Context, documentID string, k int) (*domain.AnalysisResult, error) {
	if k < 1 {
		return nil, domain.ErrInvalidTopK
	}

	lock := s.documentLock(documentID)
	lock.Lock()
	defer lock.Unlock()

	ctx, span := telemetry.StartSpan(ctx, "analysis.analyze", telemetry.SpanAttributes{
		DocumentID: documentID,
		Operation:  "analyze",
	})
	defer span.End()

	if !s.registry.Exists(documentID) {
		return nil, domain.ErrDocumentNotFound
	}

	// Broad-context retrieval: an empty query returns the first k chunks
	// in document order without a similarity pass.
	chunks, err := s.retriever.TopK(ctx, documentID, "", k, s.embedder)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, domain.ErrNoChunksRetrieved
	}

	result, err := s.generator.Analyze(ctx, chunks, "")
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}
	finding := s.screener.Screen(texts, result)
	result.ShariaFindings = &finding

	if !finding.IsPass() {
		severity := finding.RedFlagSeverity()
		for _, reason := range finding.Reasons {
			// The canned pass sentence cannot appear outside Pass, but
			// skip it anyway rather than surface it as a risk.
			if strings.Contains(reason, "No explicit non-compliant") {
				continue
			}
			result.RedFlags = append(result.RedFlags, domain.RedFlag{
				Flag:     reason,
				Severity: severity,
				Category: "Sharia",
				Page:     nil, // keyword hits can span chunks, no single page applies
			})
		}
	}

	s.cache.Put(documentID, result)
	return result, nil
}

// GetAnalysis returns the cached analysis for a document, if any.
func (s *AnalysisService) GetAnalysis(documentID string) (*domain.AnalysisResult, error) {
	return s.cache.Get(documentID)
}
