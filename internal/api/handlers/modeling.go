package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/faisalmelhim/AI-Hackathon/internal/api"
	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
)

type DCFService interface {
	Run(input domain.DCFInput) (*domain.DCFResult, error)
}

type ModelingHandler struct {
	svc DCFService
}

func NewModelingHandler(svc DCFService) *ModelingHandler {
	return &ModelingHandler{svc: svc}
}

// RunDCF performs a 5-year DCF valuation with base, bull and bear scenarios.
func (h *ModelingHandler) RunDCF(w http.ResponseWriter, r *http.Request) {
	var input domain.DCFInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Run(input)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, result)
}
