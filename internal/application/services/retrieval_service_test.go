package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/repositories"
)

func TestRetrieve_OrdersSourcesAndRendersTemplates(t *testing.T) {
	specialtyRepo := new(MockSpecialtyRepo)
	diseaseRepo := new(MockDiseaseRepo)
	doctorRepo := new(MockDoctorRepo)

	embedding := []float32{0.1, 0.2}

	specialtyRepo.On("Nearest", mock.Anything, embedding, 5).Return([]repositories.SpecialtyMatch{
		{Specialty: entities.Specialty{ID: 1, Name: "Poli Paru", Description: "Spesialis paru"}, Distance: 0.1},
	}, nil)
	diseaseRepo.On("Nearest", mock.Anything, embedding, 5).Return([]repositories.DiseaseMatch{
		{Disease: entities.Disease{
			ID: 7, Name: "Pneumonia", Description: "Infeksi paru",
			Symptoms: "Batuk", Treatment: "Antibiotik", PoliID: 1,
		}, Distance: 0.2},
	}, nil)
	doctorRepo.On("Nearest", mock.Anything, embedding, 5).Return([]repositories.DoctorMatch{
		{Doctor: entities.Doctor{
			ID: 3, Name: "dr. Sari", Speciality: "Spesialis Paru", Profile: "Berpengalaman",
			Location: "Gedung B", PracticeSchedule: entities.PracticeSchedule{"Senin": "08:00-12:00"},
		}, Distance: 0.3},
	}, nil)

	service := NewRetrievalService(specialtyRepo, diseaseRepo, doctorRepo, 5)

	docs, err := service.Retrieve(context.Background(), embedding)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, entities.SourcePoli, docs[0].Source)
	assert.Equal(t, "Nama Poli: Poli Paru\nDeskripsi: Spesialis paru", docs[0].Content)
	assert.Equal(t, 1, docs[0].Metadata.ID)
	assert.InDelta(t, 0.1, docs[0].Metadata.Distance, 1e-9)

	assert.Equal(t, entities.SourceDisease, docs[1].Source)
	assert.Equal(t,
		"Penyakit: Pneumonia\nDeskripsi: Infeksi paru\nGejala: Batuk\nPengobatan: Antibiotik",
		docs[1].Content,
	)

	assert.Equal(t, entities.SourceDoctor, docs[2].Source)
	assert.Equal(t,
		"Dokter: dr. Sari\nSpesialis: Spesialis Paru\nProfil: Berpengalaman\nLokasi: Gedung B\nJam Kerja: {\"Senin\":\"08:00-12:00\"}",
		docs[2].Content,
	)

	require.NotNil(t, docs[2].Metadata.Doctor)
	assert.Equal(t, "Spesialis Paru", docs[2].Metadata.Doctor.Speciality)
	assert.Equal(t, "Gedung B", docs[2].Metadata.Doctor.Location)
	assert.Equal(t, entities.PracticeSchedule{"Senin": "08:00-12:00"}, docs[2].Metadata.Doctor.PracticeSchedule)
}

func TestRetrieve_EmptyTables(t *testing.T) {
	specialtyRepo := new(MockSpecialtyRepo)
	diseaseRepo := new(MockDiseaseRepo)
	doctorRepo := new(MockDoctorRepo)

	specialtyRepo.On("Nearest", mock.Anything, mock.Anything, 5).Return([]repositories.SpecialtyMatch{}, nil)
	diseaseRepo.On("Nearest", mock.Anything, mock.Anything, 5).Return([]repositories.DiseaseMatch{}, nil)
	doctorRepo.On("Nearest", mock.Anything, mock.Anything, 5).Return([]repositories.DoctorMatch{}, nil)

	service := NewRetrievalService(specialtyRepo, diseaseRepo, doctorRepo, 5)

	docs, err := service.Retrieve(context.Background(), []float32{0.5})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestNewRetrievalService_DefaultTopK(t *testing.T) {
	service := NewRetrievalService(new(MockSpecialtyRepo), new(MockDiseaseRepo), new(MockDoctorRepo), 0)
	assert.Equal(t, 5, service.topK)
}
