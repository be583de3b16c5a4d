// File: internal/handlers/message_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/abudi-09/Chat-App/internal/dtos"
	"github.com/abudi-09/Chat-App/internal/middleware"
	"github.com/abudi-09/Chat-App/internal/services"
	"github.com/abudi-09/Chat-App/internal/services/user_services"
)

// MessageHandler exposes the contact list, chat history, and send
// endpoints.
type MessageHandler struct {
	messageService *services.MessageService
	userService    *user_services.UserService
}

func NewMessageHandler(messageService *services.MessageService, userService *user_services.UserService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		userService:    userService,
	}
}

// GetUsersForSidebar handles GET /api/messages/users.
func (h *MessageHandler) GetUsersForSidebar(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	users, err := h.userService.GetSidebarUsers(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, dtos.NewUserResponseList(users))
}

// GetMessages handles GET /api/messages/{id}, returning the full history
// with the given user, oldest first.
func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	otherID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || otherID == 0 {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	msgs, err := h.messageService.GetHistory(r.Context(), userID, uint(otherID))
	if err != nil {
		writeMessagingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// SendMessage handles POST /api/messages/send. On success it returns both
// the stored message and the refreshed conversation so the sender can
// update its inbox without a second round trip.
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, conv, err := h.messageService.Send(r.Context(), userID, req.ReceiverID, req.Text, req.Image)
	if err != nil {
		writeMessagingError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      msg,
		"conversation": conv,
	})
}
