package generation

import (
	"context"

	"github.com/detakmedis/backend/internal/domain/providers"
	"github.com/detakmedis/backend/internal/infrastructure/observability"
	"github.com/detakmedis/backend/pkg/sanitize"
)

// Orchestrator renders a persona prompt, runs it through the language
// model, and sanitizes the raw output into user-facing text.
type Orchestrator struct {
	generator providers.Generator
}

// NewOrchestrator creates a new generation orchestrator
func NewOrchestrator(generator providers.Generator) *Orchestrator {
	return &Orchestrator{generator: generator}
}

// Answer produces a sanitized answer for the question under the given
// persona, grounded on the assembled context.
func (o *Orchestrator) Answer(ctx context.Context, persona Persona, contextText, question string) (string, error) {
	logger := observability.LoggerFromContext(ctx)

	prompt := persona.Render(contextText, question)

	raw, err := o.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Error().Err(err).Str("persona", persona.Name).Msg("generation failed")
		return "", err
	}

	answer := sanitize.Answer(raw)
	logger.Debug().
		Str("persona", persona.Name).
		Int("raw_len", len(raw)).
		Int("answer_len", len(answer)).
		Msg("generated answer")

	return answer, nil
}
