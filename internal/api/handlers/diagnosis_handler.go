package handlers

import (
	"net/http"
	"strconv"

	"github.com/detakmedis/backend/internal/application/services"
	"github.com/detakmedis/backend/internal/infrastructure/observability"
)

// DiagnosisHandler handles diagnosis workflow HTTP requests
type DiagnosisHandler struct {
	service *services.DiagnosisService
}

// NewDiagnosisHandler creates a new diagnosis handler
func NewDiagnosisHandler(service *services.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{service: service}
}

// Create handles POST /api/diagnoses (multipart: image_file, query, patient_id)
func (h *DiagnosisHandler) Create(w http.ResponseWriter, r *http.Request) {
	up, err := readImageUpload(r, "image_file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if up == nil {
		respondWithError(w, http.StatusBadRequest, "image file is required")
		return
	}

	query := r.FormValue("query")
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "query is required")
		return
	}

	patientID, err := strconv.Atoi(r.FormValue("patient_id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "patient_id is required")
		return
	}

	view, err := h.service.Create(r.Context(), patientID, query, up.data, up.extension)
	if err != nil {
		logger := observability.LoggerFromContext(r.Context())
		logger.Error().Err(err).Msg("diagnosis creation failed")
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, view)
}

// Get handles GET /api/diagnoses/{id}
func (h *DiagnosisHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid diagnosis ID")
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

// List handles GET /api/diagnoses
func (h *DiagnosisHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	views, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, views)
}

// ListByPatient handles GET /api/diagnoses/patient/{patient_id}
func (h *DiagnosisHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "patient_id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid patient ID")
		return
	}
	skip, limit := pagination(r)

	views, err := h.service.ListByPatient(r.Context(), patientID, skip, limit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, views)
}

// Update handles PUT /api/diagnoses/{id} (multipart: optional image_file, optional query)
func (h *DiagnosisHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid diagnosis ID")
		return
	}

	up, err := readImageUpload(r, "image_file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var query *string
	if v := r.FormValue("query"); v != "" {
		query = &v
	}

	var data []byte
	var extension string
	if up != nil {
		data = up.data
		extension = up.extension
	}

	view, err := h.service.Update(r.Context(), id, query, data, extension)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

// Delete handles DELETE /api/diagnoses/{id}
func (h *DiagnosisHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid diagnosis ID")
		return
	}

	view, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}
