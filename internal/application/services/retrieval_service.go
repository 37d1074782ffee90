package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/repositories"
	"github.com/detakmedis/backend/internal/infrastructure/observability"
)

// RetrievalService runs similarity search over the three knowledge
// tables and renders each hit into a context document. Results keep
// per-table distance order: all poli hits first, then diseases, then
// doctors.
type RetrievalService struct {
	specialtyRepo repositories.SpecialtyRepository
	diseaseRepo   repositories.DiseaseRepository
	doctorRepo    repositories.DoctorRepository
	topK          int
}

// NewRetrievalService creates a new retrieval service
func NewRetrievalService(
	specialtyRepo repositories.SpecialtyRepository,
	diseaseRepo repositories.DiseaseRepository,
	doctorRepo repositories.DoctorRepository,
	topK int,
) *RetrievalService {
	if topK <= 0 {
		topK = 5
	}
	return &RetrievalService{
		specialtyRepo: specialtyRepo,
		diseaseRepo:   diseaseRepo,
		doctorRepo:    doctorRepo,
		topK:          topK,
	}
}

// Retrieve returns the rendered documents nearest to the query
// embedding, at most topK per source table.
func (s *RetrievalService) Retrieve(ctx context.Context, embedding []float32) ([]entities.RetrievedDocument, error) {
	logger := observability.LoggerFromContext(ctx)

	docs := []entities.RetrievedDocument{}

	specialtyMatches, err := s.specialtyRepo.Nearest(ctx, embedding, s.topK)
	if err != nil {
		return nil, err
	}
	for _, m := range specialtyMatches {
		docs = append(docs, entities.RetrievedDocument{
			Source:  entities.SourcePoli,
			Content: fmt.Sprintf("Nama Poli: %s\nDeskripsi: %s", m.Specialty.Name, m.Specialty.Description),
			Metadata: entities.DocumentMetadata{
				ID:       m.Specialty.ID,
				Name:     m.Specialty.Name,
				Distance: m.Distance,
			},
		})
	}

	diseaseMatches, err := s.diseaseRepo.Nearest(ctx, embedding, s.topK)
	if err != nil {
		return nil, err
	}
	for _, m := range diseaseMatches {
		docs = append(docs, entities.RetrievedDocument{
			Source: entities.SourceDisease,
			Content: fmt.Sprintf(
				"Penyakit: %s\nDeskripsi: %s\nGejala: %s\nPengobatan: %s",
				m.Disease.Name, m.Disease.Description, m.Disease.Symptoms, m.Disease.Treatment,
			),
			Metadata: entities.DocumentMetadata{
				ID:       m.Disease.ID,
				Name:     m.Disease.Name,
				Distance: m.Distance,
			},
		})
	}

	doctorMatches, err := s.doctorRepo.Nearest(ctx, embedding, s.topK)
	if err != nil {
		return nil, err
	}
	for _, m := range doctorMatches {
		docs = append(docs, entities.RetrievedDocument{
			Source: entities.SourceDoctor,
			Content: fmt.Sprintf(
				"Dokter: %s\nSpesialis: %s\nProfil: %s\nLokasi: %s\nJam Kerja: %s",
				m.Doctor.Name, m.Doctor.Speciality, m.Doctor.Profile, m.Doctor.Location,
				formatSchedule(m.Doctor.PracticeSchedule),
			),
			Metadata: entities.DocumentMetadata{
				ID:       m.Doctor.ID,
				Name:     m.Doctor.Name,
				Distance: m.Distance,
				Doctor: &entities.DoctorDetail{
					Speciality:       m.Doctor.Speciality,
					Location:         m.Doctor.Location,
					PracticeSchedule: m.Doctor.PracticeSchedule,
				},
			},
		})
	}

	logger.Debug().
		Int("poli", len(specialtyMatches)).
		Int("disease", len(diseaseMatches)).
		Int("doctor", len(doctorMatches)).
		Msg("retrieved context documents")

	return docs, nil
}

// formatSchedule renders a practice schedule deterministically; JSON
// encoding sorts map keys.
func formatSchedule(schedule entities.PracticeSchedule) string {
	if len(schedule) == 0 {
		return ""
	}
	raw, err := json.Marshal(schedule)
	if err != nil {
		return ""
	}
	return string(raw)
}
