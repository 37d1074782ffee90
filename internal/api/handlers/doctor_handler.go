package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/detakmedis/backend/internal/application/services"
	"github.com/detakmedis/backend/internal/domain/entities"
)

// DoctorHandler handles doctor HTTP requests
type DoctorHandler struct {
	service *services.DoctorService
}

// NewDoctorHandler creates a new doctor handler
func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// Create handles POST /api/doctors
func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input entities.DoctorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doctor, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, doctor)
}

// Get handles GET /api/doctors/{id}
func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid doctor ID")
		return
	}

	doctor, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doctor)
}

// List handles GET /api/doctors
func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	doctors, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doctors)
}

// Update handles PUT /api/doctors/{id}
func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid doctor ID")
		return
	}

	var update entities.DoctorUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doctor, err := h.service.Update(r.Context(), id, update)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doctor)
}

// Delete handles DELETE /api/doctors/{id}
func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid doctor ID")
		return
	}

	doctor, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doctor)
}
