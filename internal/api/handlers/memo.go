package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/faisalmelhim/AI-Hackathon/internal/api"
)

type MemoService interface {
	Generate(ctx context.Context, documentID, language string) (string, error)
}

type MemoHandler struct {
	svc MemoService
}

func NewMemoHandler(svc MemoService) *MemoHandler {
	return &MemoHandler{svc: svc}
}

type MemoRequest struct {
	DocumentID string `json:"document_id"`
	Language   string `json:"language"`
}

type MemoResponse struct {
	Memo string `json:"memo"`
}

// Generate writes an investment memo from a cached document analysis.
func (h *MemoHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req MemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DocumentID == "" {
		api.Error(w, http.StatusBadRequest, "document_id is required")
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	memo, err := h.svc.Generate(r.Context(), req.DocumentID, req.Language)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, MemoResponse{Memo: memo})
}
