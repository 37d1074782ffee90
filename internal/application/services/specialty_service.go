package services

import (
	"context"
	"strings"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/providers"
	"github.com/detakmedis/backend/internal/domain/repositories"
	"github.com/detakmedis/backend/internal/infrastructure/observability"
	apperrors "github.com/detakmedis/backend/pkg/errors"
)

// SpecialtyService manages specialties (poli) and keeps their
// embeddings in sync with the searchable fields.
type SpecialtyService struct {
	repo     repositories.SpecialtyRepository
	embedder providers.Embedder
}

// NewSpecialtyService creates a new specialty service
func NewSpecialtyService(repo repositories.SpecialtyRepository, embedder providers.Embedder) *SpecialtyService {
	return &SpecialtyService{
		repo:     repo,
		embedder: embedder,
	}
}

// Create creates a specialty and embeds its searchable text
func (s *SpecialtyService) Create(ctx context.Context, input entities.SpecialtyInput) (*entities.Specialty, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	specialty := &entities.Specialty{
		Name:        input.Name,
		Description: input.Description,
	}

	embedding, err := s.embedder.Embed(ctx, specialtyEmbeddingText(specialty))
	if err != nil {
		return nil, apperrors.NewExternalError("failed to embed specialty", err)
	}
	specialty.Embedding = embedding

	if err := s.repo.Create(ctx, specialty); err != nil {
		return nil, err
	}
	return specialty, nil
}

// Get retrieves a specialty by ID
func (s *SpecialtyService) Get(ctx context.Context, id int) (*entities.Specialty, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves specialties with skip/limit pagination
func (s *SpecialtyService) List(ctx context.Context, skip, limit int) ([]*entities.Specialty, error) {
	return s.repo.List(ctx, skip, limit)
}

// Update applies a partial update, re-embedding when the searchable
// fields changed
func (s *SpecialtyService) Update(ctx context.Context, id int, update entities.SpecialtyUpdate) (*entities.Specialty, error) {
	specialty, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if update.Name != nil && *update.Name != specialty.Name {
		specialty.Name = *update.Name
		changed = true
	}
	if update.Description != nil && *update.Description != specialty.Description {
		specialty.Description = *update.Description
		changed = true
	}

	if changed {
		embedding, err := s.embedder.Embed(ctx, specialtyEmbeddingText(specialty))
		if err != nil {
			return nil, apperrors.NewExternalError("failed to embed specialty", err)
		}
		specialty.Embedding = embedding
	} else {
		logger := observability.LoggerFromContext(ctx)
		logger.Debug().Int("specialty_id", id).Msg("no searchable fields changed, keeping embedding")
	}

	if err := s.repo.Update(ctx, specialty); err != nil {
		return nil, err
	}
	return specialty, nil
}

// Delete deletes a specialty and returns the deleted record
func (s *SpecialtyService) Delete(ctx context.Context, id int) (*entities.Specialty, error) {
	specialty, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return specialty, nil
}
