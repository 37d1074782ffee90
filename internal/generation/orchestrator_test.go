package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func TestOrchestratorAnswer_RendersAndSanitizes(t *testing.T) {
	gen := new(mockGenerator)
	gen.On("Generate", mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil }),
		"Konteks:\nINFO\n\nPertanyaan: tanya\n\nJawaban:").
		Return("<think>internal</think>**Jawaban** bersih.", nil)

	persona := Persona{
		Name:     "test",
		Version:  1,
		Template: "Konteks:\n{context}\n\nPertanyaan: {question}\n\nJawaban:",
	}

	o := NewOrchestrator(gen)
	answer, err := o.Answer(context.Background(), persona, "INFO", "tanya")
	require.NoError(t, err)
	assert.Equal(t, "Jawaban bersih.", answer)
}

func TestOrchestratorAnswer_PropagatesGenerationError(t *testing.T) {
	gen := new(mockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("backend down"))

	o := NewOrchestrator(gen)
	_, err := o.Answer(context.Background(), Persona{Template: "{context} {question}"}, "a", "b")
	assert.Error(t, err)
}
