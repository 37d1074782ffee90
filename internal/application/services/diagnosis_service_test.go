package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/repositories"
	"github.com/detakmedis/backend/internal/generation"
	apperrors "github.com/detakmedis/backend/pkg/errors"
)

// diagnosisFixture wires a DiagnosisService over mocks. Retrieval
// returns one disease and one doctor match for every query.
type diagnosisFixture struct {
	repo       *MockDiagnosisRepo
	imageRepo  *MockMedicalImageRepo
	store      *MockImageStore
	classifier *MockClassifier
	embedder   *MockEmbedder
	generator  *MockGenerator
	service    *DiagnosisService
}

func newDiagnosisFixture(t *testing.T) *diagnosisFixture {
	t.Helper()

	f := &diagnosisFixture{
		repo:       new(MockDiagnosisRepo),
		imageRepo:  new(MockMedicalImageRepo),
		store:      new(MockImageStore),
		classifier: new(MockClassifier),
		embedder:   new(MockEmbedder),
		generator:  new(MockGenerator),
	}

	specialtyRepo := new(MockSpecialtyRepo)
	diseaseRepo := new(MockDiseaseRepo)
	doctorRepo := new(MockDoctorRepo)
	specialtyRepo.On("Nearest", mock.Anything, mock.Anything, mock.Anything).Return([]repositories.SpecialtyMatch{}, nil)
	diseaseRepo.On("Nearest", mock.Anything, mock.Anything, mock.Anything).Return([]repositories.DiseaseMatch{
		{Disease: entities.Disease{ID: 42, Name: "Pneumonia", PoliID: 2}, Distance: 0.1},
	}, nil)
	doctorRepo.On("Nearest", mock.Anything, mock.Anything, mock.Anything).Return([]repositories.DoctorMatch{
		{Doctor: entities.Doctor{
			ID: 3, Name: "dr. Sari", Speciality: "Spesialis Paru", Location: "Gedung B",
			PracticeSchedule: entities.PracticeSchedule{"Selasa": "08:00-12:00"},
		}, Distance: 0.2},
	}, nil)

	retrieval := NewRetrievalService(specialtyRepo, diseaseRepo, doctorRepo, 5)
	images := NewMedicalImageService(f.imageRepo, f.store, f.classifier, testRouting)

	f.service = NewDiagnosisService(
		f.repo,
		images,
		f.embedder,
		retrieval,
		generation.NewOrchestrator(f.generator),
	)
	return f
}

func TestDiagnosisCreate_FullWorkflow(t *testing.T) {
	f := newDiagnosisFixture(t)

	data := []byte("xray")
	f.store.On("Save", mock.Anything, data, "png").Return("/images/d.png", nil)
	f.classifier.On("Classify", mock.Anything, data).Return(scoresFor("Pneumonia"), nil)
	f.imageRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.MedicalImage).ID = 11
	})
	f.embedder.On("Embed", mock.Anything, "sesak napas").Return([]float32{0.1}, nil)
	f.generator.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		// Context carries the image label section before the document block.
		return strings.Contains(prompt, "Pneumonia\n\n---\n\nINFORMASI DOKUMEN TEKSTUAL") &&
			strings.Contains(prompt, "sesak napas")
	})).Return("Hasil pemeriksaan menunjukkan pneumonia.", nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(d *entities.Diagnosis) bool {
		return d.DiseaseID == 42 && d.MedicalImageID == 11 && d.Query == "sesak napas"
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.Diagnosis).ID = 99
	})

	view, err := f.service.Create(context.Background(), 7, "sesak napas", data, "png")
	require.NoError(t, err)

	assert.Equal(t, 99, view.ID)
	assert.Equal(t, "/images/d.png", view.Path)
	assert.Equal(t, "Hasil pemeriksaan menunjukkan pneumonia.", view.Result)
	require.Len(t, view.RelatedDoctors, 1)
	assert.Equal(t, 3, view.RelatedDoctors[0].ID)
	assert.Equal(t, "dr. Sari", view.RelatedDoctors[0].Name)
	assert.Equal(t, "Spesialis Paru", view.RelatedDoctors[0].Speciality)
}

func TestDiagnosisCreate_EmptyQuery(t *testing.T) {
	f := newDiagnosisFixture(t)

	_, err := f.service.Create(context.Background(), 7, " ", []byte("xray"), "png")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestFirstDiseaseID(t *testing.T) {
	docs := []entities.RetrievedDocument{
		{Source: entities.SourcePoli, Metadata: entities.DocumentMetadata{ID: 1}},
		{Source: entities.SourceDisease, Metadata: entities.DocumentMetadata{ID: 42}},
		{Source: entities.SourceDisease, Metadata: entities.DocumentMetadata{ID: 43}},
	}
	assert.Equal(t, 42, firstDiseaseID(docs))
	assert.Equal(t, 0, firstDiseaseID(nil))
	assert.Equal(t, 0, firstDiseaseID([]entities.RetrievedDocument{
		{Source: entities.SourcePoli, Metadata: entities.DocumentMetadata{ID: 1}},
	}))
}

func TestRelatedDoctors_SkipsDocsWithoutDetail(t *testing.T) {
	docs := []entities.RetrievedDocument{
		{Source: entities.SourceDoctor, Metadata: entities.DocumentMetadata{ID: 3, Name: "dr. Sari",
			Doctor: &entities.DoctorDetail{Speciality: "Spesialis Paru"}}},
		{Source: entities.SourceDoctor, Metadata: entities.DocumentMetadata{ID: 4, Name: "dr. Tanpa Detail"}},
		{Source: entities.SourceDisease, Metadata: entities.DocumentMetadata{ID: 42}},
	}

	got := relatedDoctors(docs)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

func TestDiagnosisGet_RecomputesRelatedDoctors(t *testing.T) {
	f := newDiagnosisFixture(t)

	f.repo.On("GetByID", mock.Anything, 99).Return(&repositories.DiagnosisWithImage{
		Diagnosis: entities.Diagnosis{ID: 99, Query: "sesak napas", Result: "Hasil tersimpan", DiseaseID: 42, MedicalImageID: 11},
		Image:     entities.MedicalImage{ID: 11, Path: "/images/d.png", Label: "Pneumonia"},
	}, nil)
	f.embedder.On("Embed", mock.Anything, "sesak napas").Return([]float32{0.1}, nil)

	view, err := f.service.Get(context.Background(), 99)
	require.NoError(t, err)

	assert.Equal(t, "Hasil tersimpan", view.Result)
	assert.Equal(t, "/images/d.png", view.Path)
	require.Len(t, view.RelatedDoctors, 1)
	assert.Equal(t, "dr. Sari", view.RelatedDoctors[0].Name)
}

func TestDiagnosisUpdate_WithoutImageKeepsStoredLabel(t *testing.T) {
	f := newDiagnosisFixture(t)

	f.repo.On("GetByID", mock.Anything, 99).Return(&repositories.DiagnosisWithImage{
		Diagnosis: entities.Diagnosis{ID: 99, Query: "sesak napas", Result: "Lama", DiseaseID: 42, MedicalImageID: 11},
		Image:     entities.MedicalImage{ID: 11, Path: "/images/d.png", Label: "Effusion"},
	}, nil)
	f.embedder.On("Embed", mock.Anything, "nyeri dada").Return([]float32{0.2}, nil)
	f.generator.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Effusion")
	})).Return("Hasil baru.", nil)
	f.repo.On("Update", mock.Anything, mock.MatchedBy(func(d *entities.Diagnosis) bool {
		return d.ID == 99 && d.Query == "nyeri dada" && d.Result == "Hasil baru." && d.MedicalImageID == 11
	})).Return(nil)

	query := "nyeri dada"
	view, err := f.service.Update(context.Background(), 99, &query, nil, "")
	require.NoError(t, err)

	assert.Equal(t, "Hasil baru.", view.Result)
	f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestDiagnosisUpdate_WithImageReusesImageRecord(t *testing.T) {
	f := newDiagnosisFixture(t)

	f.repo.On("GetByID", mock.Anything, 99).Return(&repositories.DiagnosisWithImage{
		Diagnosis: entities.Diagnosis{ID: 99, Query: "sesak napas", Result: "Lama", DiseaseID: 42, MedicalImageID: 11},
		Image:     entities.MedicalImage{ID: 11, Path: "/images/d.png", Label: "Effusion", PatientID: 7, PoliID: 2},
	}, nil)

	data := []byte("newxray")
	f.imageRepo.On("GetByID", mock.Anything, 11).Return(&entities.MedicalImage{
		ID: 11, Path: "/images/d.png", Label: "Effusion", PatientID: 7, PoliID: 2,
	}, nil)
	f.store.On("Save", mock.Anything, data, "png").Return("/images/e.png", nil)
	f.classifier.On("Classify", mock.Anything, data).Return(scoresFor("Cardiomegaly"), nil)
	f.imageRepo.On("Update", mock.Anything, mock.MatchedBy(func(img *entities.MedicalImage) bool {
		return img.ID == 11 && img.Label == "Cardiomegaly" && img.PoliID == 1
	})).Return(nil)
	f.store.On("Delete", mock.Anything, "/images/d.png").Return(nil)

	f.embedder.On("Embed", mock.Anything, "sesak napas").Return([]float32{0.1}, nil)
	f.generator.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Cardiomegaly")
	})).Return("Hasil baru.", nil)
	f.repo.On("Update", mock.Anything, mock.MatchedBy(func(d *entities.Diagnosis) bool {
		return d.MedicalImageID == 11
	})).Return(nil)

	view, err := f.service.Update(context.Background(), 99, nil, data, "png")
	require.NoError(t, err)
	assert.Equal(t, "/images/e.png", view.Path)
}

func TestDiagnosisDelete_ReturnsViewBeforeRemoval(t *testing.T) {
	f := newDiagnosisFixture(t)

	f.repo.On("GetByID", mock.Anything, 99).Return(&repositories.DiagnosisWithImage{
		Diagnosis: entities.Diagnosis{ID: 99, Query: "sesak napas", Result: "Hasil", DiseaseID: 42, MedicalImageID: 11},
		Image:     entities.MedicalImage{ID: 11, Path: "/images/d.png", Label: "Pneumonia"},
	}, nil)
	f.embedder.On("Embed", mock.Anything, "sesak napas").Return([]float32{0.1}, nil)
	f.repo.On("Delete", mock.Anything, 99).Return(nil)

	view, err := f.service.Delete(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, 99, view.ID)
	assert.Equal(t, "Hasil", view.Result)
	require.Len(t, view.RelatedDoctors, 1)
	f.repo.AssertCalled(t, "Delete", mock.Anything, 99)
}
