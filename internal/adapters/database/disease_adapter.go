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

// DiseaseAdapter implements DiseaseRepository
type DiseaseAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewDiseaseAdapter creates a new disease adapter
func NewDiseaseAdapter(client *postgres.Client) repositories.DiseaseRepository {
	return &DiseaseAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func diseaseRecord(disease *entities.Disease) goqu.Record {
	return goqu.Record{
		"name":        disease.Name,
		"description": sql.NullString{String: disease.Description, Valid: disease.Description != ""},
		"symptoms":    sql.NullString{String: disease.Symptoms, Valid: disease.Symptoms != ""},
		"treatment":   sql.NullString{String: disease.Treatment, Valid: disease.Treatment != ""},
		"poli_id":     disease.PoliID,
		"embedding":   embeddingValue(disease.Embedding),
	}
}

func scanDisease(scan func(...interface{}) error) (*entities.Disease, error) {
	disease := &entities.Disease{}
	var description, symptoms, treatment sql.NullString

	err := scan(
		&disease.ID,
		&disease.Name,
		&description,
		&symptoms,
		&treatment,
		&disease.PoliID,
	)
	if err != nil {
		return nil, err
	}

	disease.Description = description.String
	disease.Symptoms = symptoms.String
	disease.Treatment = treatment.String
	return disease, nil
}

// Create creates a new disease
func (a *DiseaseAdapter) Create(ctx context.Context, disease *entities.Disease) error {
	query, args, err := a.db.Insert("disease").
		Rows(diseaseRecord(disease)).
		Returning("id").
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&disease.ID); err != nil {
		return apperrors.NewInternalError("failed to create disease", err)
	}

	return nil
}

// GetByID retrieves a disease by ID
func (a *DiseaseAdapter) GetByID(ctx context.Context, id int) (*entities.Disease, error) {
	return a.getByField(ctx, "id", id)
}

// GetByName retrieves a disease by exact name
func (a *DiseaseAdapter) GetByName(ctx context.Context, name string) (*entities.Disease, error) {
	return a.getByField(ctx, "name", name)
}

func (a *DiseaseAdapter) getByField(ctx context.Context, field string, value interface{}) (*entities.Disease, error) {
	query, args, err := a.db.Select(
		"id", "name", "description", "symptoms", "treatment", "poli_id",
	).From("disease").
		Where(goqu.Ex{field: value}).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	disease, err := scanDisease(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("disease with %s %v not found", field, value))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get disease", err)
	}

	return disease, nil
}

// List retrieves diseases with skip/limit pagination
func (a *DiseaseAdapter) List(ctx context.Context, skip, limit int) ([]*entities.Disease, error) {
	ds := a.db.Select(
		"id", "name", "description", "symptoms", "treatment", "poli_id",
	).From("disease").
		Order(goqu.I("id").Asc())

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

	return a.queryDiseases(ctx, query, args)
}

// ListByPoli retrieves the diseases attached to a specialty
func (a *DiseaseAdapter) ListByPoli(ctx context.Context, poliID int) ([]*entities.Disease, error) {
	query, args, err := a.db.Select(
		"id", "name", "description", "symptoms", "treatment", "poli_id",
	).From("disease").
		Where(goqu.Ex{"poli_id": poliID}).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryDiseases(ctx, query, args)
}

func (a *DiseaseAdapter) queryDiseases(ctx context.Context, query string, args []interface{}) ([]*entities.Disease, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list diseases", err)
	}
	defer rows.Close()

	diseases := []*entities.Disease{}
	for rows.Next() {
		disease, err := scanDisease(rows.Scan)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan disease", err)
		}
		diseases = append(diseases, disease)
	}

	return diseases, rows.Err()
}

// Update persists the given disease. An empty embedding leaves the
// stored vector untouched; reads do not load it.
func (a *DiseaseAdapter) Update(ctx context.Context, disease *entities.Disease) error {
	record := diseaseRecord(disease)
	if len(disease.Embedding) == 0 {
		delete(record, "embedding")
	}

	query, args, err := a.db.Update("disease").
		Set(record).
		Where(goqu.Ex{"id": disease.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update disease", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("disease with id %d not found", disease.ID))
	}

	return nil
}

// Delete deletes a disease
func (a *DiseaseAdapter) Delete(ctx context.Context, id int) error {
	query, args, err := a.db.Delete("disease").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete disease", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("disease with id %d not found", id))
	}

	return nil
}

// Nearest returns the k diseases closest to the query embedding
func (a *DiseaseAdapter) Nearest(ctx context.Context, embedding []float32, k int) ([]repositories.DiseaseMatch, error) {
	distance := goqu.L("embedding <-> ?::vector", formatVector(embedding))

	query, args, err := a.db.Select(
		"id", "name", "description", "symptoms", "treatment", "poli_id",
		distance.As("distance"),
	).From("disease").
		Where(goqu.L("embedding IS NOT NULL")).
		Order(distance.Asc()).
		Limit(uint(k)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build similarity query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to search diseases", err)
	}
	defer rows.Close()

	matches := []repositories.DiseaseMatch{}
	for rows.Next() {
		var match repositories.DiseaseMatch
		var description, symptoms, treatment sql.NullString

		err := rows.Scan(
			&match.Disease.ID,
			&match.Disease.Name,
			&description,
			&symptoms,
			&treatment,
			&match.Disease.PoliID,
			&match.Distance,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan disease match", err)
		}

		match.Disease.Description = description.String
		match.Disease.Symptoms = symptoms.String
		match.Disease.Treatment = treatment.String
		matches = append(matches, match)
	}

	return matches, rows.Err()
}
