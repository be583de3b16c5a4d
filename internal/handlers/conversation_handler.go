// File: internal/handlers/conversation_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/abudi-09/Chat-App/internal/dtos"
	"github.com/abudi-09/Chat-App/internal/middleware"
	"github.com/abudi-09/Chat-App/internal/services"
)

// ConversationHandler exposes the inbox listing and explicit conversation
// creation.
type ConversationHandler struct {
	conversationService *services.ConversationService
}

func NewConversationHandler(conversationService *services.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// GetConversations handles GET /api/conversations, most recently active
// first.
func (h *ConversationHandler) GetConversations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	convs, err := h.conversationService.ListForUser(r.Context(), userID)
	if err != nil {
		writeMessagingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, convs)
}

// CreateConversation handles POST /api/conversations. Finding an existing
// conversation for the pair is not an error; it is returned as-is.
func (h *ConversationHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	conv, err := h.conversationService.FindOrCreate(r.Context(), userID, req.TargetUserID)
	if err != nil {
		writeMessagingError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, conv)
}
