package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/faisalmelhim/AI-Hackathon/internal/api"
	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
)

type IngestService interface {
	Ingest(ctx context.Context, filename string, content []byte) (*domain.Document, error)
}

type UploadHandler struct {
	svc IngestService
}

func NewUploadHandler(svc IngestService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

type UploadResponse struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Pages      int    `json:"pages"`
	Chunks     int    `json:"chunks"`
}

// Upload receives a multipart file, extracts and chunks its text, and
// indexes it for analysis.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		api.Error(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	doc, err := h.svc.Ingest(r.Context(), header.Filename, content)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, UploadResponse{
		DocumentID: doc.ID,
		Filename:   doc.Filename,
		Pages:      doc.Pages,
		Chunks:     doc.Chunks,
	})
}
