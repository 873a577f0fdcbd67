package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"orgrealign/internal/service"
)

// AnalysisHandler handles organizational analysis endpoints
type AnalysisHandler struct {
	analysisSvc *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisSvc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisSvc: analysisSvc}
}

// Analyze handles POST /v1/assessments/{id}/analysis
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.analysisSvc.Analyze(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			writeError(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetAnalysis handles GET /v1/assessments/{id}/analysis
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.analysisSvc.GetAnalysis(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "assessment not analyzed yet")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
