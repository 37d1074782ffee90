package repositories

import (
	"context"

	"github.com/detakmedis/backend/internal/domain/entities"
)

// DiseaseMatch pairs a disease with its L2 distance from a query
// embedding.
type DiseaseMatch struct {
	Disease  entities.Disease
	Distance float64
}

// DiseaseRepository defines the interface for disease data operations
type DiseaseRepository interface {
	// Create creates a new disease and fills in its generated ID
	Create(ctx context.Context, disease *entities.Disease) error

	// GetByID retrieves a disease by ID
	GetByID(ctx context.Context, id int) (*entities.Disease, error)

	// GetByName retrieves a disease by exact name
	GetByName(ctx context.Context, name string) (*entities.Disease, error)

	// List retrieves diseases with skip/limit pagination
	List(ctx context.Context, skip, limit int) ([]*entities.Disease, error)

	// ListByPoli retrieves the diseases attached to a specialty
	ListByPoli(ctx context.Context, poliID int) ([]*entities.Disease, error)

	// Update persists the given disease; an empty embedding leaves
	// the stored vector unchanged
	Update(ctx context.Context, disease *entities.Disease) error

	// Delete deletes a disease
	Delete(ctx context.Context, id int) error

	// Nearest returns the k diseases closest to the query embedding,
	// ordered by ascending distance
	Nearest(ctx context.Context, embedding []float32, k int) ([]DiseaseMatch, error)
}
