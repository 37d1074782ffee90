package services

import (
	"context"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/providers"
	"github.com/detakmedis/backend/internal/domain/repositories"
	"github.com/detakmedis/backend/internal/infrastructure/observability"
	apperrors "github.com/detakmedis/backend/pkg/errors"
)

// SpecialtyRouting maps classifier labels to specialty IDs. Cardiomegaly
// routes to cardiology; every other label in the vocabulary is a lung
// condition and routes to pulmonology.
type SpecialtyRouting struct {
	CardiologyPoliID  int
	PulmonologyPoliID int
}

// Route returns the specialty ID for a classifier label
func (r SpecialtyRouting) Route(label string) int {
	if label == "Cardiomegaly" {
		return r.CardiologyPoliID
	}
	return r.PulmonologyPoliID
}

// MedicalImageService stores uploads, classifies them, and manages the
// resulting image records. Stored files and DB rows are kept consistent
// by removing the file when the DB write fails.
type MedicalImageService struct {
	repo       repositories.MedicalImageRepository
	store      providers.ImageStore
	classifier providers.ImageClassifier
	routing    SpecialtyRouting
}

// NewMedicalImageService creates a new medical image service
func NewMedicalImageService(
	repo repositories.MedicalImageRepository,
	store providers.ImageStore,
	classifier providers.ImageClassifier,
	routing SpecialtyRouting,
) *MedicalImageService {
	return &MedicalImageService{
		repo:       repo,
		store:      store,
		classifier: classifier,
		routing:    routing,
	}
}

// CreateFromUpload stores the upload, classifies it, and creates the
// image record. Without a classifier label the upload is rejected and
// the stored file removed.
func (s *MedicalImageService) CreateFromUpload(ctx context.Context, patientID int, data []byte, extension string) (*entities.MedicalImage, error) {
	logger := observability.LoggerFromContext(ctx)

	path, err := s.store.Save(ctx, data, extension)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to store image", err)
	}

	label, err := s.classifyTopLabel(ctx, data)
	if err != nil || label == "" {
		if delErr := s.store.Delete(ctx, path); delErr != nil {
			logger.Error().Err(delErr).Str("path", path).Msg("failed to clean up image after classification failure")
		}
		return nil, apperrors.NewValidationError("image label could not be determined")
	}

	image := &entities.MedicalImage{
		Path:      path,
		Label:     label,
		PatientID: patientID,
		PoliID:    s.routing.Route(label),
	}

	if err := s.repo.Create(ctx, image); err != nil {
		if delErr := s.store.Delete(ctx, path); delErr != nil {
			logger.Error().Err(delErr).Str("path", path).Msg("failed to clean up image after db error")
		}
		return nil, err
	}

	logger.Info().
		Int("image_id", image.ID).
		Str("label", image.Label).
		Int("poli_id", image.PoliID).
		Msg("medical image created")

	return image, nil
}

// UpdateFromUpload replaces the stored file of an existing image record
// and reclassifies it. A classification failure keeps the previous
// label. The old file is removed only after the record is updated.
func (s *MedicalImageService) UpdateFromUpload(ctx context.Context, id int, patientID *int, data []byte, extension string) (*entities.MedicalImage, error) {
	logger := observability.LoggerFromContext(ctx)

	image, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldPath := image.Path

	newPath, err := s.store.Save(ctx, data, extension)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to store image", err)
	}

	label, err := s.classifyTopLabel(ctx, data)
	if err != nil || label == "" {
		logger.Warn().Err(err).Int("image_id", id).Msg("classification failed on update, keeping existing label")
		label = image.Label
	}

	if patientID != nil {
		image.PatientID = *patientID
	}
	image.Path = newPath
	image.Label = label
	image.PoliID = s.routing.Route(label)

	if err := s.repo.Update(ctx, image); err != nil {
		if delErr := s.store.Delete(ctx, newPath); delErr != nil {
			logger.Error().Err(delErr).Str("path", newPath).Msg("failed to clean up new image after db error")
		}
		return nil, err
	}

	if err := s.store.Delete(ctx, oldPath); err != nil {
		logger.Error().Err(err).Str("path", oldPath).Msg("failed to delete replaced image file")
	}

	return image, nil
}

// Predict reruns classification on a stored image and returns the full
// per-label distribution.
func (s *MedicalImageService) Predict(ctx context.Context, id int) (entities.Classification, error) {
	image, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := s.store.Read(ctx, image.Path)
	if err != nil {
		return nil, apperrors.NewNotFoundError("image file not found")
	}

	scores, err := s.classifier.Classify(ctx, data)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to classify image", err)
	}
	return entities.Classification(scores), nil
}

// Get retrieves a medical image by ID
func (s *MedicalImageService) Get(ctx context.Context, id int) (*entities.MedicalImage, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves medical images with skip/limit pagination
func (s *MedicalImageService) List(ctx context.Context, skip, limit int) ([]*entities.MedicalImage, error) {
	return s.repo.List(ctx, skip, limit)
}

// ListByPatient retrieves a patient's medical images
func (s *MedicalImageService) ListByPatient(ctx context.Context, patientID int, skip, limit int) ([]*entities.MedicalImage, error) {
	return s.repo.ListByPatient(ctx, patientID, skip, limit)
}

// Delete removes the image record and returns it. The stored file is
// left in place; diagnosis rows may still reference its path.
func (s *MedicalImageService) Delete(ctx context.Context, id int) (*entities.MedicalImage, error) {
	image, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *MedicalImageService) classifyTopLabel(ctx context.Context, data []byte) (string, error) {
	scores, err := s.classifier.Classify(ctx, data)
	if err != nil {
		return "", err
	}
	return entities.Classification(scores).TopLabel(), nil
}
