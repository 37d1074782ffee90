package services

import (
	"strings"

	"github.com/detakmedis/backend/internal/domain/entities"
)

// The embedding text for each entity is a stable rendering of its
// searchable fields. Changing these formats silently invalidates every
// stored vector, so keep them in sync with the re-embed rules in the
// CRUD services.

func specialtyEmbeddingText(specialty *entities.Specialty) string {
	if specialty.Description == "" {
		return specialty.Name
	}
	return specialty.Name + ": " + specialty.Description
}

func diseaseEmbeddingText(disease *entities.Disease) string {
	if disease.Description == "" {
		return disease.Name
	}
	return disease.Name + ": " + disease.Description
}

func doctorEmbeddingText(doctor *entities.Doctor) string {
	parts := []string{}
	for _, p := range []string{doctor.Name, doctor.Speciality, doctor.Profile} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
