package services

import (
	"context"
	"strings"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/providers"
	"github.com/detakmedis/backend/internal/domain/repositories"
	apperrors "github.com/detakmedis/backend/pkg/errors"
)

// DoctorService manages doctor profiles and keeps their embeddings in
// sync with the searchable fields.
type DoctorService struct {
	repo          repositories.DoctorRepository
	specialtyRepo repositories.SpecialtyRepository
	embedder      providers.Embedder
}

// NewDoctorService creates a new doctor service
func NewDoctorService(
	repo repositories.DoctorRepository,
	specialtyRepo repositories.SpecialtyRepository,
	embedder providers.Embedder,
) *DoctorService {
	return &DoctorService{
		repo:          repo,
		specialtyRepo: specialtyRepo,
		embedder:      embedder,
	}
}

// Create creates a doctor and embeds the searchable profile text
func (s *DoctorService) Create(ctx context.Context, input entities.DoctorInput) (*entities.Doctor, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if _, err := s.specialtyRepo.GetByID(ctx, input.PoliID); err != nil {
		return nil, err
	}

	doctor := &entities.Doctor{
		Name:             input.Name,
		Profile:          input.Profile,
		Speciality:       input.Speciality,
		ContactInfo:      input.ContactInfo,
		Location:         input.Location,
		PracticeSchedule: input.PracticeSchedule,
		PoliID:           input.PoliID,
	}

	embedding, err := s.embedder.Embed(ctx, doctorEmbeddingText(doctor))
	if err != nil {
		return nil, apperrors.NewExternalError("failed to embed doctor", err)
	}
	doctor.Embedding = embedding

	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// Get retrieves a doctor by ID
func (s *DoctorService) Get(ctx context.Context, id int) (*entities.Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves doctors with skip/limit pagination
func (s *DoctorService) List(ctx context.Context, skip, limit int) ([]*entities.Doctor, error) {
	return s.repo.List(ctx, skip, limit)
}

// ListByPoli retrieves the doctors attached to a specialty
func (s *DoctorService) ListByPoli(ctx context.Context, poliID int) ([]*entities.Doctor, error) {
	return s.repo.ListByPoli(ctx, poliID)
}

// Update applies a partial update. Name, speciality, and profile feed
// the embedding text, so any of them triggers a re-embed.
func (s *DoctorService) Update(ctx context.Context, id int, update entities.DoctorUpdate) (*entities.Doctor, error) {
	doctor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reembed := false
	if update.Name != nil && *update.Name != doctor.Name {
		doctor.Name = *update.Name
		reembed = true
	}
	if update.Speciality != nil && *update.Speciality != doctor.Speciality {
		doctor.Speciality = *update.Speciality
		reembed = true
	}
	if update.Profile != nil && *update.Profile != doctor.Profile {
		doctor.Profile = *update.Profile
		reembed = true
	}
	if update.ContactInfo != nil {
		doctor.ContactInfo = *update.ContactInfo
	}
	if update.Location != nil {
		doctor.Location = *update.Location
	}
	if update.PracticeSchedule != nil {
		doctor.PracticeSchedule = *update.PracticeSchedule
	}
	if update.PoliID != nil {
		if _, err := s.specialtyRepo.GetByID(ctx, *update.PoliID); err != nil {
			return nil, err
		}
		doctor.PoliID = *update.PoliID
	}

	if reembed {
		embedding, err := s.embedder.Embed(ctx, doctorEmbeddingText(doctor))
		if err != nil {
			return nil, apperrors.NewExternalError("failed to embed doctor", err)
		}
		doctor.Embedding = embedding
	}

	if err := s.repo.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// Delete deletes a doctor and returns the deleted record
func (s *DoctorService) Delete(ctx context.Context, id int) (*entities.Doctor, error) {
	doctor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return doctor, nil
}
