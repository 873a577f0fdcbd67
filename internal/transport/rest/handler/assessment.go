package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"orgrealign/internal/service"
)

// AssessmentHandler handles assessment submission and scoring endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Submit handles POST /v1/assessments
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := h.assessmentSvc.Submit(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, assessment)
}

// List handles GET /v1/assessments?segment={segment}
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	segment := r.URL.Query().Get("segment")
	if segment == "" {
		writeError(w, http.StatusBadRequest, "segment query param is required")
		return
	}

	assessments, err := h.assessmentSvc.ListBySegment(r.Context(), segment)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assessments)
}

// Get handles GET /v1/assessments/{id}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	assessment, err := h.assessmentSvc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			writeError(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// Delete handles DELETE /v1/assessments/{id}
func (h *AssessmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.assessmentSvc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			writeError(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Score handles POST /v1/assessments/{id}/score
func (h *AssessmentHandler) Score(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	output, err := h.assessmentSvc.Score(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			writeError(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// GetScore handles GET /v1/assessments/{id}/score
func (h *AssessmentHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	output, err := h.assessmentSvc.GetScore(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if output == nil {
		writeError(w, http.StatusNotFound, "assessment not scored yet")
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// ScoreLegacy handles GET /v1/assessments/{id}/score/legacy
func (h *AssessmentHandler) ScoreLegacy(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.assessmentSvc.ScoreLegacy(r.Context(), id)
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
