package handlers

import (
	"net/http"
	"strconv"

	"github.com/detakmedis/backend/internal/application/services"
)

// MedicalImageHandler handles medical image HTTP requests
type MedicalImageHandler struct {
	service *services.MedicalImageService
}

// NewMedicalImageHandler creates a new medical image handler
func NewMedicalImageHandler(service *services.MedicalImageService) *MedicalImageHandler {
	return &MedicalImageHandler{service: service}
}

// Create handles POST /api/medical-images (multipart: image_file, patient_id)
func (h *MedicalImageHandler) Create(w http.ResponseWriter, r *http.Request) {
	up, err := readImageUpload(r, "image_file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if up == nil {
		respondWithError(w, http.StatusBadRequest, "image file is required")
		return
	}

	patientID, err := strconv.Atoi(r.FormValue("patient_id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "patient_id is required")
		return
	}

	image, err := h.service.CreateFromUpload(r.Context(), patientID, up.data, up.extension)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, image)
}

// Get handles GET /api/medical-images/{id}
func (h *MedicalImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid image ID")
		return
	}

	image, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, image)
}

// List handles GET /api/medical-images
func (h *MedicalImageHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	images, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, images)
}

// ListByPatient handles GET /api/medical-images/patient/{patient_id}
func (h *MedicalImageHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "patient_id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid patient ID")
		return
	}
	skip, limit := pagination(r)

	images, err := h.service.ListByPatient(r.Context(), patientID, skip, limit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, images)
}

// Predict handles GET /api/medical-images/{id}/predict
func (h *MedicalImageHandler) Predict(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid image ID")
		return
	}

	scores, err := h.service.Predict(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, scores)
}

// Update handles PUT /api/medical-images/{id} (multipart: image_file, optional patient_id)
func (h *MedicalImageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid image ID")
		return
	}

	up, err := readImageUpload(r, "image_file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if up == nil {
		respondWithError(w, http.StatusBadRequest, "image file is required")
		return
	}

	var patientID *int
	if v := r.FormValue("patient_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid patient_id")
			return
		}
		patientID = &n
	}

	image, err := h.service.UpdateFromUpload(r.Context(), id, patientID, up.data, up.extension)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, image)
}

// Delete handles DELETE /api/medical-images/{id}
func (h *MedicalImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid image ID")
		return
	}

	image, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, image)
}
