package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/faisalmelhim/AI-Hackathon/internal/api"
	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
	"github.com/faisalmelhim/AI-Hackathon/internal/service"
)

const maxAnalyzeTopK = 50

type AnalysisService interface {
	Analyze(ctx context.Context, documentID string, k int) (*domain.AnalysisResult, error)
	GetAnalysis(documentID string) (*domain.AnalysisResult, error)
}

type AnalyzeHandler struct {
	svc AnalysisService
}

func NewAnalyzeHandler(svc AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

type AnalyzeRequest struct {
	K        int    `json:"k"`
	Language string `json:"language"`
}

// Create triggers a financial and Sharia analysis of a document and caches
// the result. The request body is optional; k defaults to the service's
// retrieval breadth.
func (h *AnalyzeHandler) Create(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")
	if documentID == "" {
		api.Error(w, http.StatusBadRequest, "document id is required")
		return
	}

	req := AnalyzeRequest{K: service.DefaultTopK}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.K == 0 {
		req.K = service.DefaultTopK
	}
	if req.K < 1 || req.K > maxAnalyzeTopK {
		api.Error(w, http.StatusBadRequest, "k must be between 1 and 50")
		return
	}

	result, err := h.svc.Analyze(r.Context(), documentID, req.K)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, result)
}

// Get retrieves a cached analysis result.
func (h *AnalyzeHandler) Get(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")
	if documentID == "" {
		api.Error(w, http.StatusBadRequest, "document id is required")
		return
	}

	result, err := h.svc.GetAnalysis(documentID)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, result)
}
