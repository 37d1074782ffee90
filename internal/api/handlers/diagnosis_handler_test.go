package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/detakmedis/backend/internal/application/services"
	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/generation"
)

func newDiagnosisHandler(
	repo *mockDiagnosisRepo,
	imageRepo *mockImageRepo,
	store *mockImageStore,
	classifier *mockClassifier,
	embedder *mockEmbedder,
	generator *mockGenerator,
) *DiagnosisHandler {
	imageService := services.NewMedicalImageService(imageRepo, store, classifier,
		services.SpecialtyRouting{CardiologyPoliID: 1, PulmonologyPoliID: 2})
	retrieval := services.NewRetrievalService(
		new(mockSpecialtyRepo), new(mockDiseaseRepo), new(mockDoctorRepo), 5,
	)
	service := services.NewDiagnosisService(repo, imageService, embedder, retrieval,
		generation.NewOrchestrator(generator))
	return NewDiagnosisHandler(service)
}

func TestDiagnosisCreate_Success(t *testing.T) {
	repo := new(mockDiagnosisRepo)
	imageRepo := new(mockImageRepo)
	store := new(mockImageStore)
	classifier := new(mockClassifier)
	embedder := new(mockEmbedder)
	generator := new(mockGenerator)

	data := []byte("xray-bytes")
	store.On("Save", mock.Anything, data, "png").Return("/images/d.png", nil)
	classifier.On("Classify", mock.Anything, data).Return(cardioScores(), nil)
	imageRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.MedicalImage).ID = 11
	})
	embedder.On("Embed", mock.Anything, "sesak napas").Return([]float32{0.1}, nil)
	generator.On("Generate", mock.Anything, mock.Anything).Return("Indikasi kardiomegali.", nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.Diagnosis).ID = 5
	})

	handler := newDiagnosisHandler(repo, imageRepo, store, classifier, embedder, generator)

	body, contentType := multipartUpload(t, "image_file", "scan.png", "image/png", data,
		map[string]string{"query": "sesak napas", "patient_id": "7"})
	req := httptest.NewRequest("POST", "/api/diagnoses", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var got entities.DiagnosisView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, 5, got.ID)
	assert.Equal(t, "/images/d.png", got.Path)
	assert.Equal(t, "sesak napas", got.Query)
	assert.Equal(t, "Indikasi kardiomegali.", got.Result)
	assert.Empty(t, got.RelatedDoctors)
}

func TestDiagnosisCreate_MissingImage(t *testing.T) {
	handler := newDiagnosisHandler(new(mockDiagnosisRepo), new(mockImageRepo),
		new(mockImageStore), new(mockClassifier), new(mockEmbedder), new(mockGenerator))

	// The image part must arrive under image_file; a part with any
	// other name counts as a missing upload.
	body, contentType := multipartUpload(t, "file", "scan.png", "image/png", []byte("xray"),
		map[string]string{"query": "sesak napas", "patient_id": "7"})
	req := httptest.NewRequest("POST", "/api/diagnoses", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiagnosisCreate_MissingQuery(t *testing.T) {
	handler := newDiagnosisHandler(new(mockDiagnosisRepo), new(mockImageRepo),
		new(mockImageStore), new(mockClassifier), new(mockEmbedder), new(mockGenerator))

	body, contentType := multipartUpload(t, "image_file", "scan.png", "image/png", []byte("xray"),
		map[string]string{"patient_id": "7"})
	req := httptest.NewRequest("POST", "/api/diagnoses", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
