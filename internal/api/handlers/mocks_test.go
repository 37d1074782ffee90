package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/repositories"
)

// Mocks for the handler tests. Methods the tests never exercise return
// zero values.

type mockSpecialtyRepo struct {
	mock.Mock
}

func (m *mockSpecialtyRepo) Create(ctx context.Context, specialty *entities.Specialty) error {
	args := m.Called(ctx, specialty)
	return args.Error(0)
}

func (m *mockSpecialtyRepo) GetByID(ctx context.Context, id int) (*entities.Specialty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Specialty), args.Error(1)
}

func (m *mockSpecialtyRepo) List(ctx context.Context, skip, limit int) ([]*entities.Specialty, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Specialty), args.Error(1)
}

func (m *mockSpecialtyRepo) Update(ctx context.Context, specialty *entities.Specialty) error {
	return nil
}

func (m *mockSpecialtyRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSpecialtyRepo) Nearest(ctx context.Context, embedding []float32, k int) ([]repositories.SpecialtyMatch, error) {
	return []repositories.SpecialtyMatch{}, nil
}

type mockDiseaseRepo struct {
	mock.Mock
}

func (m *mockDiseaseRepo) Create(ctx context.Context, disease *entities.Disease) error { return nil }
func (m *mockDiseaseRepo) GetByID(ctx context.Context, id int) (*entities.Disease, error) {
	return nil, nil
}
func (m *mockDiseaseRepo) GetByName(ctx context.Context, name string) (*entities.Disease, error) {
	return nil, nil
}
func (m *mockDiseaseRepo) List(ctx context.Context, skip, limit int) ([]*entities.Disease, error) {
	return nil, nil
}

func (m *mockDiseaseRepo) ListByPoli(ctx context.Context, poliID int) ([]*entities.Disease, error) {
	args := m.Called(ctx, poliID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Disease), args.Error(1)
}

func (m *mockDiseaseRepo) Update(ctx context.Context, disease *entities.Disease) error { return nil }
func (m *mockDiseaseRepo) Delete(ctx context.Context, id int) error                    { return nil }
func (m *mockDiseaseRepo) Nearest(ctx context.Context, embedding []float32, k int) ([]repositories.DiseaseMatch, error) {
	return []repositories.DiseaseMatch{}, nil
}

type mockDoctorRepo struct {
	mock.Mock
}

func (m *mockDoctorRepo) Create(ctx context.Context, doctor *entities.Doctor) error { return nil }
func (m *mockDoctorRepo) GetByID(ctx context.Context, id int) (*entities.Doctor, error) {
	return nil, nil
}
func (m *mockDoctorRepo) List(ctx context.Context, skip, limit int) ([]*entities.Doctor, error) {
	return nil, nil
}

func (m *mockDoctorRepo) ListByPoli(ctx context.Context, poliID int) ([]*entities.Doctor, error) {
	args := m.Called(ctx, poliID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Doctor), args.Error(1)
}

func (m *mockDoctorRepo) Update(ctx context.Context, doctor *entities.Doctor) error { return nil }
func (m *mockDoctorRepo) Delete(ctx context.Context, id int) error                  { return nil }
func (m *mockDoctorRepo) Nearest(ctx context.Context, embedding []float32, k int) ([]repositories.DoctorMatch, error) {
	return []repositories.DoctorMatch{}, nil
}

type mockEmbedder struct {
	mock.Mock
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type mockImageRepo struct {
	mock.Mock
}

func (m *mockImageRepo) Create(ctx context.Context, image *entities.MedicalImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *mockImageRepo) GetByID(ctx context.Context, id int) (*entities.MedicalImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MedicalImage), args.Error(1)
}

func (m *mockImageRepo) List(ctx context.Context, skip, limit int) ([]*entities.MedicalImage, error) {
	return nil, nil
}

func (m *mockImageRepo) ListByPatient(ctx context.Context, patientID int, skip, limit int) ([]*entities.MedicalImage, error) {
	return nil, nil
}

func (m *mockImageRepo) Update(ctx context.Context, image *entities.MedicalImage) error { return nil }
func (m *mockImageRepo) Delete(ctx context.Context, id int) error                       { return nil }

type mockDiagnosisRepo struct {
	mock.Mock
}

func (m *mockDiagnosisRepo) Create(ctx context.Context, diagnosis *entities.Diagnosis) error {
	args := m.Called(ctx, diagnosis)
	return args.Error(0)
}

func (m *mockDiagnosisRepo) GetByID(ctx context.Context, id int) (*repositories.DiagnosisWithImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.DiagnosisWithImage), args.Error(1)
}

func (m *mockDiagnosisRepo) List(ctx context.Context, skip, limit int) ([]*repositories.DiagnosisWithImage, error) {
	return nil, nil
}

func (m *mockDiagnosisRepo) ListByPatient(ctx context.Context, patientID int, skip, limit int) ([]*repositories.DiagnosisWithImage, error) {
	return nil, nil
}

func (m *mockDiagnosisRepo) Update(ctx context.Context, diagnosis *entities.Diagnosis) error {
	return nil
}

func (m *mockDiagnosisRepo) Delete(ctx context.Context, id int) error { return nil }

type mockImageStore struct {
	mock.Mock
}

func (m *mockImageStore) Save(ctx context.Context, data []byte, extension string) (string, error) {
	args := m.Called(ctx, data, extension)
	return args.String(0), args.Error(1)
}

func (m *mockImageStore) Read(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockImageStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

type mockClassifier struct {
	mock.Mock
}

func (m *mockClassifier) Classify(ctx context.Context, data []byte) (map[string]float64, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}
