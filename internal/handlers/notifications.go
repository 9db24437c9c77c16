package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/konekta/backend/internal/auth"
	"example.com/konekta/backend/internal/notifications"
)

type NotificationsHandler struct {
	hub *notifications.Hub
}

func NewNotificationsHandler(hub *notifications.Hub) *NotificationsHandler {
	return &NotificationsHandler{hub: hub}
}

// Stream держит SSE-соединение и транслирует события пользователя до
// закрытия соединения клиентом.
func (h *NotificationsHandler) Stream(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c, "authentication required")
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ch := h.hub.Subscribe(userID)
	defer h.hub.Unsubscribe(userID, ch)

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, open := <-ch:
			if !open {
				return nil
			}
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
