package repositories

import (
	"context"

	"github.com/detakmedis/backend/internal/domain/entities"
)

// DiagnosisWithImage joins a diagnosis with its medical image row, the
// unit the workflow reads and deletes together.
type DiagnosisWithImage struct {
	Diagnosis entities.Diagnosis
	Image     entities.MedicalImage
}

// DiagnosisRepository defines the interface for diagnosis data operations
type DiagnosisRepository interface {
	// Create creates a new diagnosis and fills in its generated ID
	Create(ctx context.Context, diagnosis *entities.Diagnosis) error

	// GetByID retrieves a diagnosis joined with its image
	GetByID(ctx context.Context, id int) (*DiagnosisWithImage, error)

	// List retrieves diagnoses joined with their images, skip/limit paginated
	List(ctx context.Context, skip, limit int) ([]*DiagnosisWithImage, error)

	// ListByPatient retrieves a patient's diagnoses joined with their images
	ListByPatient(ctx context.Context, patientID int, skip, limit int) ([]*DiagnosisWithImage, error)

	// Update persists the given diagnosis
	Update(ctx context.Context, diagnosis *entities.Diagnosis) error

	// Delete deletes a diagnosis
	Delete(ctx context.Context, id int) error
}
