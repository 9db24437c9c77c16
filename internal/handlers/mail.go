package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/konekta/backend/internal/auth"
	"example.com/konekta/backend/internal/mail"
	"example.com/konekta/backend/internal/notifications"
)

// Sender — исходящая почта.
type Sender interface {
	Send(ctx context.Context, email mail.Email) (string, error)
}

type MailHandler struct {
	sender        Sender
	hub           *notifications.Hub
	publicBaseURL string
}

func NewMailHandler(sender Sender, hub *notifications.Hub, publicBaseURL string) *MailHandler {
	return &MailHandler{sender: sender, hub: hub, publicBaseURL: publicBaseURL}
}

type SendItineraryRequest struct {
	Email         string `json:"email" validate:"required"`
	Destination   string `json:"destination" validate:"required"`
	ItineraryHTML string `json:"itineraryHtml" validate:"required"`
	Subject       string `json:"subject"`
}

// SendItinerary отправляет итинерарий на почту. Адрес проверяется до
// обращения к провайдеру, HTML-фрагмент клиента проходит санитайзер.
func (h *MailHandler) SendItinerary(c echo.Context) error {
	var req SendItineraryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "email, destination and itineraryHtml are required")
	}
	if !mail.ValidAddress(req.Email) {
		return badRequest(c, "invalid email address")
	}

	subject := req.Subject
	if subject == "" {
		subject = fmt.Sprintf("Tu itinerario para %s", req.Destination)
	}

	fragment := mail.SanitizeFragment(req.ItineraryHTML)
	htmlBody, textBody := mail.BuildItineraryEmail(req.Destination, fragment, h.publicBaseURL)

	id, err := h.sender.Send(c.Request().Context(), mail.Email{
		To:      req.Email,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	})
	if err != nil {
		if errors.Is(err, mail.ErrMissingAPIKey) {
			return serverError(c, "email service is not configured")
		}
		var sendErr *mail.SendError
		if errors.As(err, &sendErr) {
			switch sendErr.StatusCode {
			case http.StatusForbidden:
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "email provider rejected the recipient: sandbox keys only deliver to the account owner",
				})
			case http.StatusTooManyRequests:
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "email provider rate limit exceeded, try again later",
				})
			}
		}
		slog.Error("itinerary email failed", "destination", req.Destination, "error", err)
		return serverError(c, "failed to send itinerary email")
	}

	if userID, ok := auth.UserIDFromContext(c); ok {
		h.hub.Publish(userID, notifications.Event{
			Type:        notifications.EventItineraryEmailSent,
			Destination: req.Destination,
			Message:     "Itinerario enviado a " + req.Email,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]string{"id": id},
	})
}
