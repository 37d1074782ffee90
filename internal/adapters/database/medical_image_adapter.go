package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/repositories"
	"github.com/detakmedis/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/detakmedis/backend/pkg/errors"
)

// MedicalImageAdapter implements MedicalImageRepository
type MedicalImageAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewMedicalImageAdapter creates a new medical image adapter
func NewMedicalImageAdapter(client *postgres.Client) repositories.MedicalImageRepository {
	return &MedicalImageAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new medical image record
func (a *MedicalImageAdapter) Create(ctx context.Context, image *entities.MedicalImage) error {
	record := goqu.Record{
		"path":       image.Path,
		"label":      image.Label,
		"patient_id": image.PatientID,
		"poli_id":    image.PoliID,
	}

	query, args, err := a.db.Insert("medical_images").
		Rows(record).
		Returning("id").
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&image.ID); err != nil {
		return apperrors.NewInternalError("failed to create medical image", err)
	}

	return nil
}

// GetByID retrieves a medical image by ID
func (a *MedicalImageAdapter) GetByID(ctx context.Context, id int) (*entities.MedicalImage, error) {
	query, args, err := a.db.Select("id", "path", "label", "patient_id", "poli_id").
		From("medical_images").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	image := &entities.MedicalImage{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&image.ID,
		&image.Path,
		&image.Label,
		&image.PatientID,
		&image.PoliID,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("medical image with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get medical image", err)
	}

	return image, nil
}

// List retrieves medical images with skip/limit pagination
func (a *MedicalImageAdapter) List(ctx context.Context, skip, limit int) ([]*entities.MedicalImage, error) {
	return a.list(ctx, a.baseSelect(), skip, limit)
}

// ListByPatient retrieves a patient's medical images
func (a *MedicalImageAdapter) ListByPatient(ctx context.Context, patientID int, skip, limit int) ([]*entities.MedicalImage, error) {
	return a.list(ctx, a.baseSelect().Where(goqu.Ex{"patient_id": patientID}), skip, limit)
}

func (a *MedicalImageAdapter) baseSelect() *goqu.SelectDataset {
	return a.db.Select("id", "path", "label", "patient_id", "poli_id").
		From("medical_images").
		Order(goqu.I("id").Asc())
}

func (a *MedicalImageAdapter) list(ctx context.Context, ds *goqu.SelectDataset, skip, limit int) ([]*entities.MedicalImage, error) {
	if skip > 0 {
		ds = ds.Offset(uint(skip))
	}
	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list medical images", err)
	}
	defer rows.Close()

	images := []*entities.MedicalImage{}
	for rows.Next() {
		image := &entities.MedicalImage{}
		err := rows.Scan(
			&image.ID,
			&image.Path,
			&image.Label,
			&image.PatientID,
			&image.PoliID,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan medical image", err)
		}
		images = append(images, image)
	}

	return images, rows.Err()
}

// Update persists the given medical image record
func (a *MedicalImageAdapter) Update(ctx context.Context, image *entities.MedicalImage) error {
	record := goqu.Record{
		"path":       image.Path,
		"label":      image.Label,
		"patient_id": image.PatientID,
		"poli_id":    image.PoliID,
	}

	query, args, err := a.db.Update("medical_images").
		Set(record).
		Where(goqu.Ex{"id": image.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update medical image", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("medical image with id %d not found", image.ID))
	}

	return nil
}

// Delete deletes a medical image record
func (a *MedicalImageAdapter) Delete(ctx context.Context, id int) error {
	query, args, err := a.db.Delete("medical_images").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete medical image", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("medical image with id %d not found", id))
	}

	return nil
}
