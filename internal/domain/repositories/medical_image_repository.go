package repositories

import (
	"context"

	"github.com/detakmedis/backend/internal/domain/entities"
)

// MedicalImageRepository defines the interface for medical image data operations
type MedicalImageRepository interface {
	// Create creates a new medical image record and fills in its generated ID
	Create(ctx context.Context, image *entities.MedicalImage) error

	// GetByID retrieves a medical image by ID
	GetByID(ctx context.Context, id int) (*entities.MedicalImage, error)

	// List retrieves medical images with skip/limit pagination
	List(ctx context.Context, skip, limit int) ([]*entities.MedicalImage, error)

	// ListByPatient retrieves a patient's medical images
	ListByPatient(ctx context.Context, patientID int, skip, limit int) ([]*entities.MedicalImage, error)

	// Update persists the given medical image record
	Update(ctx context.Context, image *entities.MedicalImage) error

	// Delete deletes a medical image record
	Delete(ctx context.Context, id int) error
}
