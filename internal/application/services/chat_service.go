package services

import (
	"context"
	"strings"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/providers"
	"github.com/detakmedis/backend/internal/generation"
	"github.com/detakmedis/backend/internal/infrastructure/observability"
	apperrors "github.com/detakmedis/backend/pkg/errors"
)

// ChatService answers free-text health questions through the full
// retrieval and generation pipeline.
type ChatService struct {
	embedder     providers.Embedder
	retrieval    *RetrievalService
	orchestrator *generation.Orchestrator
}

// NewChatService creates a new chat service
func NewChatService(
	embedder providers.Embedder,
	retrieval *RetrievalService,
	orchestrator *generation.Orchestrator,
) *ChatService {
	return &ChatService{
		embedder:     embedder,
		retrieval:    retrieval,
		orchestrator: orchestrator,
	}
}

// Chat embeds the query, retrieves grounding documents, and generates
// the assistant answer.
func (s *ChatService) Chat(ctx context.Context, query string) (*entities.ChatResponse, error) {
	logger := observability.LoggerFromContext(ctx)

	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewValidationError("query is required")
	}

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("failed to embed chat query")
		return nil, apperrors.NewExternalError("failed to embed query", err)
	}

	docs, err := s.retrieval.Retrieve(ctx, embedding)
	if err != nil {
		logger.Error().Err(err).Msg("failed to retrieve chat context")
		return nil, err
	}

	contextText := BuildChatContext(docs)

	answer, err := s.orchestrator.Answer(ctx, generation.AssistantPersona, contextText, query)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to generate answer", err)
	}

	return &entities.ChatResponse{
		Answer:            answer,
		RetrievedContexts: docs,
	}, nil
}
