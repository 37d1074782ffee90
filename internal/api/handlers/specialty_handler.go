package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/detakmedis/backend/internal/application/services"
	"github.com/detakmedis/backend/internal/domain/entities"
)

// SpecialtyHandler handles specialty (poli) HTTP requests
type SpecialtyHandler struct {
	service        *services.SpecialtyService
	diseaseService *services.DiseaseService
	doctorService  *services.DoctorService
}

// NewSpecialtyHandler creates a new specialty handler
func NewSpecialtyHandler(
	service *services.SpecialtyService,
	diseaseService *services.DiseaseService,
	doctorService *services.DoctorService,
) *SpecialtyHandler {
	return &SpecialtyHandler{
		service:        service,
		diseaseService: diseaseService,
		doctorService:  doctorService,
	}
}

// Create handles POST /api/poli
func (h *SpecialtyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input entities.SpecialtyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	specialty, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, specialty)
}

// Get handles GET /api/poli/{id}
func (h *SpecialtyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid specialty ID")
		return
	}

	specialty, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, specialty)
}

// List handles GET /api/poli
func (h *SpecialtyHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	specialties, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, specialties)
}

// ListDiseases handles GET /api/poli/{id}/diseases
func (h *SpecialtyHandler) ListDiseases(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid specialty ID")
		return
	}

	diseases, err := h.diseaseService.ListByPoli(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, diseases)
}

// ListDoctors handles GET /api/poli/{id}/doctors
func (h *SpecialtyHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid specialty ID")
		return
	}

	doctors, err := h.doctorService.ListByPoli(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doctors)
}

// Update handles PUT /api/poli/{id}
func (h *SpecialtyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid specialty ID")
		return
	}

	var update entities.SpecialtyUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	specialty, err := h.service.Update(r.Context(), id, update)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, specialty)
}

// Delete handles DELETE /api/poli/{id}
func (h *SpecialtyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid specialty ID")
		return
	}

	specialty, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, specialty)
}
