package providers

import (
	"context"
	"errors"
)

// Sentinel errors for AI backends. Adapters wrap these so callers can
// branch with errors.Is without knowing which client produced them.
var (
	// ErrEmbeddingUnavailable means the embedding backend failed or
	// returned a vector of the wrong width.
	ErrEmbeddingUnavailable = errors.New("embedding unavailable")

	// ErrGenerationFailed means the language model could not produce a
	// response.
	ErrGenerationFailed = errors.New("generation failed")
)

// Embedder converts text into a fixed-width embedding vector.
type Embedder interface {
	// Embed returns the embedding for the given text
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Generator produces a free-text completion for a fully rendered prompt.
type Generator interface {
	// Generate returns the raw model output for the prompt
	Generate(ctx context.Context, prompt string) (string, error)
}

// ImageClassifier scores an image against the chest X-ray vocabulary.
type ImageClassifier interface {
	// Classify returns per-label confidence percentages for the image bytes
	Classify(ctx context.Context, data []byte) (map[string]float64, error)
}
