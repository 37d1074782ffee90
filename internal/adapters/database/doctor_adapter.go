package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/repositories"
	"github.com/detakmedis/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/detakmedis/backend/pkg/errors"
)

// DoctorAdapter implements DoctorRepository
type DoctorAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewDoctorAdapter creates a new doctor adapter
func NewDoctorAdapter(client *postgres.Client) repositories.DoctorRepository {
	return &DoctorAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func doctorRecord(doctor *entities.Doctor) (goqu.Record, error) {
	var schedule interface{}
	if doctor.PracticeSchedule != nil {
		raw, err := json.Marshal(doctor.PracticeSchedule)
		if err != nil {
			return nil, err
		}
		schedule = raw
	}

	return goqu.Record{
		"name":              doctor.Name,
		"profile":           sql.NullString{String: doctor.Profile, Valid: doctor.Profile != ""},
		"speciality":        sql.NullString{String: doctor.Speciality, Valid: doctor.Speciality != ""},
		"contact_info":      sql.NullString{String: doctor.ContactInfo, Valid: doctor.ContactInfo != ""},
		"location":          sql.NullString{String: doctor.Location, Valid: doctor.Location != ""},
		"practice_schedule": schedule,
		"poli_id":           doctor.PoliID,
		"embedding":         embeddingValue(doctor.Embedding),
	}, nil
}

func scanDoctor(scan func(...interface{}) error) (*entities.Doctor, error) {
	doctor := &entities.Doctor{}
	var profile, speciality, contactInfo, location sql.NullString
	var schedule []byte

	err := scan(
		&doctor.ID,
		&doctor.Name,
		&profile,
		&speciality,
		&contactInfo,
		&location,
		&schedule,
		&doctor.PoliID,
	)
	if err != nil {
		return nil, err
	}

	doctor.Profile = profile.String
	doctor.Speciality = speciality.String
	doctor.ContactInfo = contactInfo.String
	doctor.Location = location.String

	if len(schedule) > 0 {
		if err := json.Unmarshal(schedule, &doctor.PracticeSchedule); err != nil {
			return nil, err
		}
	}

	return doctor, nil
}

// Create creates a new doctor
func (a *DoctorAdapter) Create(ctx context.Context, doctor *entities.Doctor) error {
	record, err := doctorRecord(doctor)
	if err != nil {
		return apperrors.NewInternalError("failed to encode practice schedule", err)
	}

	query, args, err := a.db.Insert("doctors").
		Rows(record).
		Returning("id").
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&doctor.ID); err != nil {
		return apperrors.NewInternalError("failed to create doctor", err)
	}

	return nil
}

// GetByID retrieves a doctor by ID
func (a *DoctorAdapter) GetByID(ctx context.Context, id int) (*entities.Doctor, error) {
	query, args, err := a.db.Select(
		"id", "name", "profile", "speciality", "contact_info", "location",
		"practice_schedule", "poli_id",
	).From("doctors").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	doctor, err := scanDoctor(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("doctor with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get doctor", err)
	}

	return doctor, nil
}

// List retrieves doctors with skip/limit pagination
func (a *DoctorAdapter) List(ctx context.Context, skip, limit int) ([]*entities.Doctor, error) {
	ds := a.db.Select(
		"id", "name", "profile", "speciality", "contact_info", "location",
		"practice_schedule", "poli_id",
	).From("doctors").
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

	return a.queryDoctors(ctx, query, args)
}

// ListByPoli retrieves the doctors attached to a specialty
func (a *DoctorAdapter) ListByPoli(ctx context.Context, poliID int) ([]*entities.Doctor, error) {
	query, args, err := a.db.Select(
		"id", "name", "profile", "speciality", "contact_info", "location",
		"practice_schedule", "poli_id",
	).From("doctors").
		Where(goqu.Ex{"poli_id": poliID}).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryDoctors(ctx, query, args)
}

func (a *DoctorAdapter) queryDoctors(ctx context.Context, query string, args []interface{}) ([]*entities.Doctor, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list doctors", err)
	}
	defer rows.Close()

	doctors := []*entities.Doctor{}
	for rows.Next() {
		doctor, err := scanDoctor(rows.Scan)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan doctor", err)
		}
		doctors = append(doctors, doctor)
	}

	return doctors, rows.Err()
}

// Update persists the given doctor. An empty embedding leaves the
// stored vector untouched; reads do not load it.
func (a *DoctorAdapter) Update(ctx context.Context, doctor *entities.Doctor) error {
	record, err := doctorRecord(doctor)
	if err != nil {
		return apperrors.NewInternalError("failed to encode practice schedule", err)
	}
	if len(doctor.Embedding) == 0 {
		delete(record, "embedding")
	}

	query, args, err := a.db.Update("doctors").
		Set(record).
		Where(goqu.Ex{"id": doctor.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update doctor", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("doctor with id %d not found", doctor.ID))
	}

	return nil
}

// Delete deletes a doctor
func (a *DoctorAdapter) Delete(ctx context.Context, id int) error {
	query, args, err := a.db.Delete("doctors").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete doctor", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("doctor with id %d not found", id))
	}

	return nil
}

// Nearest returns the k doctors closest to the query embedding
func (a *DoctorAdapter) Nearest(ctx context.Context, embedding []float32, k int) ([]repositories.DoctorMatch, error) {
	distance := goqu.L("embedding <-> ?::vector", formatVector(embedding))

	query, args, err := a.db.Select(
		"id", "name", "profile", "speciality", "contact_info", "location",
		"practice_schedule", "poli_id",
		distance.As("distance"),
	).From("doctors").
		Where(goqu.L("embedding IS NOT NULL")).
		Order(distance.Asc()).
		Limit(uint(k)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build similarity query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to search doctors", err)
	}
	defer rows.Close()

	matches := []repositories.DoctorMatch{}
	for rows.Next() {
		var match repositories.DoctorMatch
		var profile, speciality, contactInfo, location sql.NullString
		var schedule []byte

		err := rows.Scan(
			&match.Doctor.ID,
			&match.Doctor.Name,
			&profile,
			&speciality,
			&contactInfo,
			&location,
			&schedule,
			&match.Doctor.PoliID,
			&match.Distance,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan doctor match", err)
		}

		match.Doctor.Profile = profile.String
		match.Doctor.Speciality = speciality.String
		match.Doctor.ContactInfo = contactInfo.String
		match.Doctor.Location = location.String
		if len(schedule) > 0 {
			if err := json.Unmarshal(schedule, &match.Doctor.PracticeSchedule); err != nil {
				return nil, apperrors.NewInternalError("failed to decode practice schedule", err)
			}
		}

		matches = append(matches, match)
	}

	return matches, rows.Err()
}
