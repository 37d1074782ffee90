package repositories

import (
	"context"

	"github.com/detakmedis/backend/internal/domain/entities"
)

// DoctorMatch pairs a doctor with its L2 distance from a query
// embedding.
type DoctorMatch struct {
	Doctor   entities.Doctor
	Distance float64
}

// DoctorRepository defines the interface for doctor data operations
type DoctorRepository interface {
	// Create creates a new doctor and fills in its generated ID
	Create(ctx context.Context, doctor *entities.Doctor) error

	// GetByID retrieves a doctor by ID
	GetByID(ctx context.Context, id int) (*entities.Doctor, error)

	// List retrieves doctors with skip/limit pagination
	List(ctx context.Context, skip, limit int) ([]*entities.Doctor, error)

	// ListByPoli retrieves the doctors attached to a specialty
	ListByPoli(ctx context.Context, poliID int) ([]*entities.Doctor, error)

	// Update persists the given doctor; an empty embedding leaves
	// the stored vector unchanged
	Update(ctx context.Context, doctor *entities.Doctor) error

	// Delete deletes a doctor
	Delete(ctx context.Context, id int) error

	// Nearest returns the k doctors closest to the query embedding,
	// ordered by ascending distance
	Nearest(ctx context.Context, embedding []float32, k int) ([]DoctorMatch, error)
}
