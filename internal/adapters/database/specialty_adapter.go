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

// SpecialtyAdapter implements SpecialtyRepository on the poli table
type SpecialtyAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSpecialtyAdapter creates a new specialty adapter
func NewSpecialtyAdapter(client *postgres.Client) repositories.SpecialtyRepository {
	return &SpecialtyAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new specialty
func (a *SpecialtyAdapter) Create(ctx context.Context, specialty *entities.Specialty) error {
	record := goqu.Record{
		"name":        specialty.Name,
		"description": sql.NullString{String: specialty.Description, Valid: specialty.Description != ""},
		"embedding":   embeddingValue(specialty.Embedding),
	}

	query, args, err := a.db.Insert("poli").Rows(record).Returning("id").ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&specialty.ID); err != nil {
		return apperrors.NewInternalError("failed to create specialty", err)
	}

	return nil
}

// GetByID retrieves a specialty by ID
func (a *SpecialtyAdapter) GetByID(ctx context.Context, id int) (*entities.Specialty, error) {
	query, args, err := a.db.Select("id", "name", "description").
		From("poli").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	specialty := &entities.Specialty{}
	var description sql.NullString

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&specialty.ID,
		&specialty.Name,
		&description,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("specialty with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get specialty", err)
	}

	specialty.Description = description.String
	return specialty, nil
}

// List retrieves specialties with skip/limit pagination
func (a *SpecialtyAdapter) List(ctx context.Context, skip, limit int) ([]*entities.Specialty, error) {
	ds := a.db.Select("id", "name", "description").
		From("poli").
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

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list specialties", err)
	}
	defer rows.Close()

	specialties := []*entities.Specialty{}
	for rows.Next() {
		specialty := &entities.Specialty{}
		var description sql.NullString

		if err := rows.Scan(&specialty.ID, &specialty.Name, &description); err != nil {
			return nil, apperrors.NewInternalError("failed to scan specialty", err)
		}

		specialty.Description = description.String
		specialties = append(specialties, specialty)
	}

	return specialties, rows.Err()
}

// Update persists the given specialty. An empty embedding leaves the
// stored vector untouched; reads do not load it.
func (a *SpecialtyAdapter) Update(ctx context.Context, specialty *entities.Specialty) error {
	record := goqu.Record{
		"name":        specialty.Name,
		"description": sql.NullString{String: specialty.Description, Valid: specialty.Description != ""},
	}
	if len(specialty.Embedding) > 0 {
		record["embedding"] = embeddingValue(specialty.Embedding)
	}

	query, args, err := a.db.Update("poli").
		Set(record).
		Where(goqu.Ex{"id": specialty.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update specialty", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("specialty with id %d not found", specialty.ID))
	}

	return nil
}

// Delete deletes a specialty
func (a *SpecialtyAdapter) Delete(ctx context.Context, id int) error {
	query, args, err := a.db.Delete("poli").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete specialty", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("specialty with id %d not found", id))
	}

	return nil
}

// Nearest returns the k specialties closest to the query embedding
func (a *SpecialtyAdapter) Nearest(ctx context.Context, embedding []float32, k int) ([]repositories.SpecialtyMatch, error) {
	distance := goqu.L("embedding <-> ?::vector", formatVector(embedding))

	query, args, err := a.db.Select(
		"id", "name", "description",
		distance.As("distance"),
	).From("poli").
		Where(goqu.L("embedding IS NOT NULL")).
		Order(distance.Asc()).
		Limit(uint(k)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build similarity query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to search specialties", err)
	}
	defer rows.Close()

	matches := []repositories.SpecialtyMatch{}
	for rows.Next() {
		var match repositories.SpecialtyMatch
		var description sql.NullString

		err := rows.Scan(
			&match.Specialty.ID,
			&match.Specialty.Name,
			&description,
			&match.Distance,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan specialty match", err)
		}

		match.Specialty.Description = description.String
		matches = append(matches, match)
	}

	return matches, rows.Err()
}
