package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/detakmedis/backend/internal/application/services"
	"github.com/detakmedis/backend/internal/domain/entities"
)

// DiseaseHandler handles disease HTTP requests
type DiseaseHandler struct {
	service *services.DiseaseService
}

// NewDiseaseHandler creates a new disease handler
func NewDiseaseHandler(service *services.DiseaseService) *DiseaseHandler {
	return &DiseaseHandler{service: service}
}

// Create handles POST /api/diseases
func (h *DiseaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input entities.DiseaseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	disease, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, disease)
}

// Get handles GET /api/diseases/{id}
func (h *DiseaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid disease ID")
		return
	}

	disease, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, disease)
}

// List handles GET /api/diseases
func (h *DiseaseHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	diseases, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, diseases)
}

// Update handles PUT /api/diseases/{id}
func (h *DiseaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid disease ID")
		return
	}

	var update entities.DiseaseUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	disease, err := h.service.Update(r.Context(), id, update)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, disease)
}

// Delete handles DELETE /api/diseases/{id}
func (h *DiseaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid disease ID")
		return
	}

	disease, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, disease)
}
