package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/repositories"
)

// Shared mocks for the service tests.

type MockSpecialtyRepo struct {
	mock.Mock
}

func (m *MockSpecialtyRepo) Create(ctx context.Context, specialty *entities.Specialty) error {
	args := m.Called(ctx, specialty)
	return args.Error(0)
}

func (m *MockSpecialtyRepo) GetByID(ctx context.Context, id int) (*entities.Specialty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepo) List(ctx context.Context, skip, limit int) ([]*entities.Specialty, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepo) Update(ctx context.Context, specialty *entities.Specialty) error {
	args := m.Called(ctx, specialty)
	return args.Error(0)
}

func (m *MockSpecialtyRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSpecialtyRepo) Nearest(ctx context.Context, embedding []float32, k int) ([]repositories.SpecialtyMatch, error) {
	args := m.Called(ctx, embedding, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.SpecialtyMatch), args.Error(1)
}

type MockDiseaseRepo struct {
	mock.Mock
}

func (m *MockDiseaseRepo) Create(ctx context.Context, disease *entities.Disease) error {
	args := m.Called(ctx, disease)
	return args.Error(0)
}

func (m *MockDiseaseRepo) GetByID(ctx context.Context, id int) (*entities.Disease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Disease), args.Error(1)
}

func (m *MockDiseaseRepo) GetByName(ctx context.Context, name string) (*entities.Disease, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Disease), args.Error(1)
}

func (m *MockDiseaseRepo) List(ctx context.Context, skip, limit int) ([]*entities.Disease, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Disease), args.Error(1)
}

func (m *MockDiseaseRepo) ListByPoli(ctx context.Context, poliID int) ([]*entities.Disease, error) {
	args := m.Called(ctx, poliID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Disease), args.Error(1)
}

func (m *MockDiseaseRepo) Update(ctx context.Context, disease *entities.Disease) error {
	args := m.Called(ctx, disease)
	return args.Error(0)
}

func (m *MockDiseaseRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDiseaseRepo) Nearest(ctx context.Context, embedding []float32, k int) ([]repositories.DiseaseMatch, error) {
	args := m.Called(ctx, embedding, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.DiseaseMatch), args.Error(1)
}

type MockDoctorRepo struct {
	mock.Mock
}

func (m *MockDoctorRepo) Create(ctx context.Context, doctor *entities.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepo) GetByID(ctx context.Context, id int) (*entities.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Doctor), args.Error(1)
}

func (m *MockDoctorRepo) List(ctx context.Context, skip, limit int) ([]*entities.Doctor, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Doctor), args.Error(1)
}

func (m *MockDoctorRepo) ListByPoli(ctx context.Context, poliID int) ([]*entities.Doctor, error) {
	args := m.Called(ctx, poliID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Doctor), args.Error(1)
}

func (m *MockDoctorRepo) Update(ctx context.Context, doctor *entities.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDoctorRepo) Nearest(ctx context.Context, embedding []float32, k int) ([]repositories.DoctorMatch, error) {
	args := m.Called(ctx, embedding, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.DoctorMatch), args.Error(1)
}

type MockMedicalImageRepo struct {
	mock.Mock
}

func (m *MockMedicalImageRepo) Create(ctx context.Context, image *entities.MedicalImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockMedicalImageRepo) GetByID(ctx context.Context, id int) (*entities.MedicalImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MedicalImage), args.Error(1)
}

func (m *MockMedicalImageRepo) List(ctx context.Context, skip, limit int) ([]*entities.MedicalImage, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MedicalImage), args.Error(1)
}

func (m *MockMedicalImageRepo) ListByPatient(ctx context.Context, patientID int, skip, limit int) ([]*entities.MedicalImage, error) {
	args := m.Called(ctx, patientID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MedicalImage), args.Error(1)
}

func (m *MockMedicalImageRepo) Update(ctx context.Context, image *entities.MedicalImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockMedicalImageRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDiagnosisRepo struct {
	mock.Mock
}

func (m *MockDiagnosisRepo) Create(ctx context.Context, diagnosis *entities.Diagnosis) error {
	args := m.Called(ctx, diagnosis)
	return args.Error(0)
}

func (m *MockDiagnosisRepo) GetByID(ctx context.Context, id int) (*repositories.DiagnosisWithImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.DiagnosisWithImage), args.Error(1)
}

func (m *MockDiagnosisRepo) List(ctx context.Context, skip, limit int) ([]*repositories.DiagnosisWithImage, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repositories.DiagnosisWithImage), args.Error(1)
}

func (m *MockDiagnosisRepo) ListByPatient(ctx context.Context, patientID int, skip, limit int) ([]*repositories.DiagnosisWithImage, error) {
	args := m.Called(ctx, patientID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repositories.DiagnosisWithImage), args.Error(1)
}

func (m *MockDiagnosisRepo) Update(ctx context.Context, diagnosis *entities.Diagnosis) error {
	args := m.Called(ctx, diagnosis)
	return args.Error(0)
}

func (m *MockDiagnosisRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEmbedder struct {
	mock.Mock
}

func (m *MockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, data []byte) (map[string]float64, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(ctx context.Context, data []byte, extension string) (string, error) {
	args := m.Called(ctx, data, extension)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Read(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockImageStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
