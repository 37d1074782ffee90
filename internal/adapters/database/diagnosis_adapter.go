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

// DiagnosisAdapter implements DiagnosisRepository
type DiagnosisAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewDiagnosisAdapter creates a new diagnosis adapter
func NewDiagnosisAdapter(client *postgres.Client) repositories.DiagnosisRepository {
	return &DiagnosisAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// diagnosisRecord builds the row for insert/update. A zero DiseaseID
// stores NULL; retrieval may find no matching disease.
func diagnosisRecord(diagnosis *entities.Diagnosis) goqu.Record {
	return goqu.Record{
		"query":            diagnosis.Query,
		"result":           diagnosis.Result,
		"disease_id":       sql.NullInt64{Int64: int64(diagnosis.DiseaseID), Valid: diagnosis.DiseaseID != 0},
		"medical_image_id": diagnosis.MedicalImageID,
	}
}

// Create creates a new diagnosis
func (a *DiagnosisAdapter) Create(ctx context.Context, diagnosis *entities.Diagnosis) error {
	record := diagnosisRecord(diagnosis)

	query, args, err := a.db.Insert("diagnosis").
		Rows(record).
		Returning("id").
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&diagnosis.ID); err != nil {
		return apperrors.NewInternalError("failed to create diagnosis", err)
	}

	return nil
}

func (a *DiagnosisAdapter) joined() *goqu.SelectDataset {
	return a.db.Select(
		goqu.I("d.id"), goqu.I("d.query"), goqu.I("d.result"),
		goqu.I("d.disease_id"), goqu.I("d.medical_image_id"),
		goqu.I("m.path"), goqu.I("m.label"), goqu.I("m.patient_id"), goqu.I("m.poli_id"),
	).From(goqu.T("diagnosis").As("d")).
		Join(
			goqu.T("medical_images").As("m"),
			goqu.On(goqu.I("d.medical_image_id").Eq(goqu.I("m.id"))),
		)
}

func scanDiagnosisWithImage(scan func(...interface{}) error) (*repositories.DiagnosisWithImage, error) {
	dwi := &repositories.DiagnosisWithImage{}
	var diseaseID sql.NullInt64
	err := scan(
		&dwi.Diagnosis.ID,
		&dwi.Diagnosis.Query,
		&dwi.Diagnosis.Result,
		&diseaseID,
		&dwi.Diagnosis.MedicalImageID,
		&dwi.Image.Path,
		&dwi.Image.Label,
		&dwi.Image.PatientID,
		&dwi.Image.PoliID,
	)
	if err != nil {
		return nil, err
	}
	dwi.Diagnosis.DiseaseID = int(diseaseID.Int64)
	dwi.Image.ID = dwi.Diagnosis.MedicalImageID
	return dwi, nil
}

// GetByID retrieves a diagnosis joined with its image
func (a *DiagnosisAdapter) GetByID(ctx context.Context, id int) (*repositories.DiagnosisWithImage, error) {
	query, args, err := a.joined().
		Where(goqu.I("d.id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	dwi, err := scanDiagnosisWithImage(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("diagnosis with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get diagnosis", err)
	}

	return dwi, nil
}

// List retrieves diagnoses joined with their images
func (a *DiagnosisAdapter) List(ctx context.Context, skip, limit int) ([]*repositories.DiagnosisWithImage, error) {
	ds := a.joined().Order(goqu.I("d.id").Asc())

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

	return a.queryDiagnoses(ctx, query, args)
}

// ListByPatient retrieves a patient's diagnoses joined with their images
func (a *DiagnosisAdapter) ListByPatient(ctx context.Context, patientID int, skip, limit int) ([]*repositories.DiagnosisWithImage, error) {
	ds := a.joined().
		Where(goqu.I("m.patient_id").Eq(patientID)).
		Order(goqu.I("d.id").Asc())

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

	return a.queryDiagnoses(ctx, query, args)
}

func (a *DiagnosisAdapter) queryDiagnoses(ctx context.Context, query string, args []interface{}) ([]*repositories.DiagnosisWithImage, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list diagnoses", err)
	}
	defer rows.Close()

	diagnoses := []*repositories.DiagnosisWithImage{}
	for rows.Next() {
		dwi, err := scanDiagnosisWithImage(rows.Scan)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan diagnosis", err)
		}
		diagnoses = append(diagnoses, dwi)
	}

	return diagnoses, rows.Err()
}

// Update persists the given diagnosis
func (a *DiagnosisAdapter) Update(ctx context.Context, diagnosis *entities.Diagnosis) error {
	record := diagnosisRecord(diagnosis)

	query, args, err := a.db.Update("diagnosis").
		Set(record).
		Where(goqu.Ex{"id": diagnosis.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update diagnosis", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("diagnosis with id %d not found", diagnosis.ID))
	}

	return nil
}

// Delete deletes a diagnosis
func (a *DiagnosisAdapter) Delete(ctx context.Context, id int) error {
	query, args, err := a.db.Delete("diagnosis").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete diagnosis", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("diagnosis with id %d not found", id))
	}

	return nil
}
