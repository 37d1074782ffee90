package services

import (
	"context"
	"strings"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/providers"
	"github.com/detakmedis/backend/internal/domain/repositories"
	"github.com/detakmedis/backend/internal/generation"
	"github.com/detakmedis/backend/internal/infrastructure/observability"
	apperrors "github.com/detakmedis/backend/pkg/errors"
)

// DiagnosisService runs the image-grounded diagnosis workflow: classify
// the upload, retrieve textual context for the complaint, generate the
// virtual doctor assessment, and persist the result.
type DiagnosisService struct {
	repo         repositories.DiagnosisRepository
	images       *MedicalImageService
	embedder     providers.Embedder
	retrieval    *RetrievalService
	orchestrator *generation.Orchestrator
}

// NewDiagnosisService creates a new diagnosis service
func NewDiagnosisService(
	repo repositories.DiagnosisRepository,
	images *MedicalImageService,
	embedder providers.Embedder,
	retrieval *RetrievalService,
	orchestrator *generation.Orchestrator,
) *DiagnosisService {
	return &DiagnosisService{
		repo:         repo,
		images:       images,
		embedder:     embedder,
		retrieval:    retrieval,
		orchestrator: orchestrator,
	}
}

// retrieveForQuery embeds the complaint and returns its context
// documents.
func (s *DiagnosisService) retrieveForQuery(ctx context.Context, query string) ([]entities.RetrievedDocument, error) {
	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to embed query", err)
	}
	return s.retrieval.Retrieve(ctx, embedding)
}

// firstDiseaseID returns the ID of the nearest retrieved disease, or 0
// when retrieval found none.
func firstDiseaseID(docs []entities.RetrievedDocument) int {
	for _, doc := range docs {
		if doc.Source == entities.SourceDisease {
			return doc.Metadata.ID
		}
	}
	return 0
}

// relatedDoctors projects the retrieved doctor documents into the
// outward shape, straight from the structured metadata.
func relatedDoctors(docs []entities.RetrievedDocument) []entities.RelatedDoctor {
	doctors := []entities.RelatedDoctor{}
	for _, doc := range docs {
		if doc.Source != entities.SourceDoctor || doc.Metadata.Doctor == nil {
			continue
		}
		doctors = append(doctors, entities.RelatedDoctor{
			ID:               doc.Metadata.ID,
			Name:             doc.Metadata.Name,
			Speciality:       doc.Metadata.Doctor.Speciality,
			Location:         doc.Metadata.Doctor.Location,
			PracticeSchedule: doc.Metadata.Doctor.PracticeSchedule,
		})
	}
	return doctors
}

// Create runs the full diagnosis workflow for a new complaint and
// image upload.
func (s *DiagnosisService) Create(ctx context.Context, patientID int, query string, imageData []byte, extension string) (*entities.DiagnosisView, error) {
	logger := observability.LoggerFromContext(ctx)

	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewValidationError("query is required")
	}

	image, err := s.images.CreateFromUpload(ctx, patientID, imageData, extension)
	if err != nil {
		return nil, err
	}

	docs, err := s.retrieveForQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	contextText := BuildDiagnosisContext(image.Label, docs)

	answer, err := s.orchestrator.Answer(ctx, generation.VirtualDoctorPersona, contextText, query)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to generate diagnosis", err)
	}

	diagnosis := &entities.Diagnosis{
		Query:          query,
		Result:         answer,
		DiseaseID:      firstDiseaseID(docs),
		MedicalImageID: image.ID,
	}
	if err := s.repo.Create(ctx, diagnosis); err != nil {
		return nil, err
	}

	logger.Info().
		Int("diagnosis_id", diagnosis.ID).
		Int("image_id", image.ID).
		Str("label", image.Label).
		Msg("diagnosis created")

	return &entities.DiagnosisView{
		ID:             diagnosis.ID,
		Path:           image.Path,
		Query:          query,
		Result:         answer,
		RelatedDoctors: relatedDoctors(docs),
	}, nil
}

// view builds the outward shape of a stored diagnosis, recomputing the
// related doctors so roster changes surface on every read.
func (s *DiagnosisService) view(ctx context.Context, dwi *repositories.DiagnosisWithImage) (*entities.DiagnosisView, error) {
	docs, err := s.retrieveForQuery(ctx, dwi.Diagnosis.Query)
	if err != nil {
		return nil, err
	}

	return &entities.DiagnosisView{
		ID:             dwi.Diagnosis.ID,
		Path:           dwi.Image.Path,
		Query:          dwi.Diagnosis.Query,
		Result:         dwi.Diagnosis.Result,
		RelatedDoctors: relatedDoctors(docs),
	}, nil
}

// Get retrieves a diagnosis by ID
func (s *DiagnosisService) Get(ctx context.Context, id int) (*entities.DiagnosisView, error) {
	dwi, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, dwi)
}

// List retrieves diagnoses with skip/limit pagination
func (s *DiagnosisService) List(ctx context.Context, skip, limit int) ([]*entities.DiagnosisView, error) {
	rows, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, rows)
}

// ListByPatient retrieves a patient's diagnoses
func (s *DiagnosisService) ListByPatient(ctx context.Context, patientID int, skip, limit int) ([]*entities.DiagnosisView, error) {
	rows, err := s.repo.ListByPatient(ctx, patientID, skip, limit)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, rows)
}

func (s *DiagnosisService) views(ctx context.Context, rows []*repositories.DiagnosisWithImage) ([]*entities.DiagnosisView, error) {
	views := []*entities.DiagnosisView{}
	for _, dwi := range rows {
		v, err := s.view(ctx, dwi)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// Update reruns the workflow with an optionally updated query and
// image. With a new image the existing image record is reused in place;
// without one the stored image and label stand.
func (s *DiagnosisService) Update(ctx context.Context, id int, query *string, imageData []byte, extension string) (*entities.DiagnosisView, error) {
	dwi, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	image := &dwi.Image
	if len(imageData) > 0 {
		image, err = s.images.UpdateFromUpload(ctx, image.ID, nil, imageData, extension)
		if err != nil {
			return nil, err
		}
	}

	newQuery := dwi.Diagnosis.Query
	if query != nil && strings.TrimSpace(*query) != "" {
		newQuery = *query
	}

	docs, err := s.retrieveForQuery(ctx, newQuery)
	if err != nil {
		return nil, err
	}

	contextText := BuildDiagnosisContext(image.Label, docs)

	answer, err := s.orchestrator.Answer(ctx, generation.VirtualDoctorPersona, contextText, newQuery)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to generate diagnosis", err)
	}

	diagnosis := dwi.Diagnosis
	diagnosis.Query = newQuery
	diagnosis.Result = answer
	diagnosis.DiseaseID = firstDiseaseID(docs)
	diagnosis.MedicalImageID = image.ID
	if err := s.repo.Update(ctx, &diagnosis); err != nil {
		return nil, err
	}

	return &entities.DiagnosisView{
		ID:             diagnosis.ID,
		Path:           image.Path,
		Query:          newQuery,
		Result:         answer,
		RelatedDoctors: relatedDoctors(docs),
	}, nil
}

// Delete removes a diagnosis and returns its final view, computed
// before the row disappears.
func (s *DiagnosisService) Delete(ctx context.Context, id int) (*entities.DiagnosisView, error) {
	dwi, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view, err := s.view(ctx, dwi)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return view, nil
}
