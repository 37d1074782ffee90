package vision

import (
	"context"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/providers"
)

// MockClassifier implements a deterministic classifier for environments
// without the vision model. Every image classifies mostly as the first
// label with the remainder spread evenly.
type MockClassifier struct{}

// NewMockClassifier creates a new mock classifier
func NewMockClassifier() providers.ImageClassifier {
	return &MockClassifier{}
}

// Classify returns a fixed distribution over the disease vocabulary
func (m *MockClassifier) Classify(ctx context.Context, data []byte) (map[string]float64, error) {
	result := make(map[string]float64, len(entities.DiseaseLabels))

	rest := 40.0 / float64(len(entities.DiseaseLabels)-1)
	for i, label := range entities.DiseaseLabels {
		if i == 0 {
			result[label] = 60.0
			continue
		}
		result[label] = rest
	}
	return result, nil
}
