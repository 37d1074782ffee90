package repositories

import (
	"context"

	"github.com/detakmedis/backend/internal/domain/entities"
)

// SpecialtyMatch pairs a specialty with its L2 distance from a query
// embedding.
type SpecialtyMatch struct {
	Specialty entities.Specialty
	Distance  float64
}

// SpecialtyRepository defines the interface for specialty (poli) data operations
type SpecialtyRepository interface {
	// Create creates a new specialty and fills in its generated ID
	Create(ctx context.Context, specialty *entities.Specialty) error

	// GetByID retrieves a specialty by ID
	GetByID(ctx context.Context, id int) (*entities.Specialty, error)

	// List retrieves specialties with skip/limit pagination
	List(ctx context.Context, skip, limit int) ([]*entities.Specialty, error)

	// Update persists the given specialty; an empty embedding leaves
	// the stored vector unchanged
	Update(ctx context.Context, specialty *entities.Specialty) error

	// Delete deletes a specialty
	Delete(ctx context.Context, id int) error

	// Nearest returns the k specialties closest to the query embedding,
	// ordered by ascending distance
	Nearest(ctx context.Context, embedding []float32, k int) ([]SpecialtyMatch, error)
}
