package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/konekta/backend/internal/auth"
	"example.com/konekta/backend/internal/repository"
)

type MessageHandler struct {
	messages *repository.MessageRepository
}

func NewMessageHandler(messages *repository.MessageRepository) *MessageHandler {
	return &MessageHandler{messages: messages}
}

type CreateMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// Create сохраняет заметку пользователя о направлении.
func (h *MessageHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c, "authentication required")
	}

	var req CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "message is required")
	}

	msg, err := h.messages.Create(c.Request().Context(), userID, req.Message)
	if err != nil {
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "message is required")
		}
		slog.Error("create message failed", "user_id", userID, "error", err)
		return serverError(c, "failed to save message")
	}
	return c.JSON(http.StatusCreated, msg)
}

// List отдает заметки пользователя.
func (h *MessageHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c, "authentication required")
	}

	messages, err := h.messages.ListByUser(c.Request().Context(), userID)
	if err != nil {
		slog.Error("list messages failed", "user_id", userID, "error", err)
		return serverError(c, "failed to load messages")
	}
	return c.JSON(http.StatusOK, map[string]any{"messages": messages})
}

// Delete удаляет все заметки пользователя.
func (h *MessageHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c, "authentication required")
	}

	if err := h.messages.DeleteByUser(c.Request().Context(), userID); err != nil {
		slog.Error("delete messages failed", "user_id", userID, "error", err)
		return serverError(c, "failed to delete messages")
	}
	return c.NoContent(http.StatusNoContent)
}
