package services

import (
	"context"
	"strings"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/providers"
	"github.com/detakmedis/backend/internal/domain/repositories"
	apperrors "github.com/detakmedis/backend/pkg/errors"
)

// DiseaseService manages diseases and keeps their embeddings in sync
// with the searchable fields.
type DiseaseService struct {
	repo          repositories.DiseaseRepository
	specialtyRepo repositories.SpecialtyRepository
	embedder      providers.Embedder
}

// NewDiseaseService creates a new disease service
func NewDiseaseService(
	repo repositories.DiseaseRepository,
	specialtyRepo repositories.SpecialtyRepository,
	embedder providers.Embedder,
) *DiseaseService {
	return &DiseaseService{
		repo:          repo,
		specialtyRepo: specialtyRepo,
		embedder:      embedder,
	}
}

// Create creates a disease and embeds its searchable text
func (s *DiseaseService) Create(ctx context.Context, input entities.DiseaseInput) (*entities.Disease, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if _, err := s.specialtyRepo.GetByID(ctx, input.PoliID); err != nil {
		return nil, err
	}

	disease := &entities.Disease{
		Name:        input.Name,
		Description: input.Description,
		Symptoms:    input.Symptoms,
		Treatment:   input.Treatment,
		PoliID:      input.PoliID,
	}

	embedding, err := s.embedder.Embed(ctx, diseaseEmbeddingText(disease))
	if err != nil {
		return nil, apperrors.NewExternalError("failed to embed disease", err)
	}
	disease.Embedding = embedding

	if err := s.repo.Create(ctx, disease); err != nil {
		return nil, err
	}
	return disease, nil
}

// Get retrieves a disease by ID
func (s *DiseaseService) Get(ctx context.Context, id int) (*entities.Disease, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves diseases with skip/limit pagination
func (s *DiseaseService) List(ctx context.Context, skip, limit int) ([]*entities.Disease, error) {
	return s.repo.List(ctx, skip, limit)
}

// ListByPoli retrieves the diseases attached to a specialty
func (s *DiseaseService) ListByPoli(ctx context.Context, poliID int) ([]*entities.Disease, error) {
	return s.repo.ListByPoli(ctx, poliID)
}

// Update applies a partial update. Only name and description feed the
// embedding text, so only those trigger a re-embed.
func (s *DiseaseService) Update(ctx context.Context, id int, update entities.DiseaseUpdate) (*entities.Disease, error) {
	disease, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reembed := false
	if update.Name != nil && *update.Name != disease.Name {
		disease.Name = *update.Name
		reembed = true
	}
	if update.Description != nil && *update.Description != disease.Description {
		disease.Description = *update.Description
		reembed = true
	}
	if update.Symptoms != nil {
		disease.Symptoms = *update.Symptoms
	}
	if update.Treatment != nil {
		disease.Treatment = *update.Treatment
	}
	if update.PoliID != nil {
		if _, err := s.specialtyRepo.GetByID(ctx, *update.PoliID); err != nil {
			return nil, err
		}
		disease.PoliID = *update.PoliID
	}

	if reembed {
		embedding, err := s.embedder.Embed(ctx, diseaseEmbeddingText(disease))
		if err != nil {
			return nil, apperrors.NewExternalError("failed to embed disease", err)
		}
		disease.Embedding = embedding
	}

	if err := s.repo.Update(ctx, disease); err != nil {
		return nil, err
	}
	return disease, nil
}

// Delete deletes a disease and returns the deleted record
func (s *DiseaseService) Delete(ctx context.Context, id int) (*entities.Disease, error) {
	disease, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return disease, nil
}
