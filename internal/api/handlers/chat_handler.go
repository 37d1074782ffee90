package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/detakmedis/backend/internal/application/services"
	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/infrastructure/observability"
)

// ChatHandler handles chat requests
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req entities.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.chatService.Chat(r.Context(), req.Query)
	if err != nil {
		logger := observability.LoggerFromContext(r.Context())
		logger.Error().Err(err).Msg("chat request failed")
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}
