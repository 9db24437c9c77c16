package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/konekta/backend/internal/ai"
	"example.com/konekta/backend/internal/auth"
	"example.com/konekta/backend/internal/itinerary"
	"example.com/konekta/backend/internal/models"
	"example.com/konekta/backend/internal/notifications"
	"example.com/konekta/backend/internal/repository"
)

// ItineraryCache — хранилище сгенерированных итинерариев по направлению.
type ItineraryCache interface {
	Get(ctx context.Context, destination string) (models.ItineraryDocument, error)
	Put(ctx context.Context, doc models.ItineraryDocument) error
	Delete(ctx context.Context, destination string) error
}

type ItineraryHandler struct {
	generator ai.Generator
	cache     ItineraryCache
	hub       *notifications.Hub
}

func NewItineraryHandler(generator ai.Generator, cache ItineraryCache, hub *notifications.Hub) *ItineraryHandler {
	return &ItineraryHandler{generator: generator, cache: cache, hub: hub}
}

type GenerateItineraryRequest struct {
	Destination string                 `json:"destination" validate:"required"`
	Days        int                    `json:"days" validate:"omitempty,min=1,max=30"`
	Preferences models.TripPreferences `json:"preferences"`
}

type ItineraryResponse struct {
	Itinerary   itinerary.ViewModel `json:"itinerary"`
	Content     string              `json:"content"`
	QuickLinks  []itinerary.Link    `json:"quick_links,omitempty"`
	FromCache   bool                `json:"from_cache"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// Generate отдает итинерарий направления: из кеша, если он там есть, иначе
// через генератор с последующим кешированием нормализованного текста.
func (h *ItineraryHandler) Generate(c echo.Context) error {
	var req GenerateItineraryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "destination is required")
	}

	ctx := c.Request().Context()

	if doc, err := h.cache.Get(ctx, req.Destination); err == nil {
		return c.JSON(http.StatusOK, h.buildResponse(req.Destination, doc.Content, true, doc.GeneratedAt))
	} else if !errors.Is(err, repository.ErrNotFound) {
		slog.Warn("itinerary cache lookup failed", "destination", req.Destination, "error", err)
	}

	prefs := req.Preferences
	prefs.Destination = req.Destination
	if req.Days > 0 {
		prefs.DurationDays = req.Days
	}

	content, err := h.generator.Generate(ctx, prefs)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrMissingAPIKey):
			return serverError(c, "itinerary generator is not configured")
		case errors.Is(err, ai.ErrMissingDestination):
			return badRequest(c, "destination is required")
		case errors.Is(err, ai.ErrEmptyContent):
			return serverError(c, "itinerary generation returned no content")
		default:
			slog.Error("itinerary generation failed", "destination", req.Destination, "error", err)
			return serverError(c, "failed to generate itinerary")
		}
	}

	normalized := itinerary.Normalize(content)
	generatedAt := time.Now()

	params, _ := json.Marshal(prefs)
	doc := models.ItineraryDocument{
		DestinationKey: repository.CacheKey(req.Destination),
		Content:        normalized,
		Params:         params,
		GeneratedAt:    generatedAt,
	}
	if err := h.cache.Put(ctx, doc); err != nil {
		slog.Warn("itinerary cache write failed", "destination", req.Destination, "error", err)
	}

	if userID, ok := auth.UserIDFromContext(c); ok {
		h.hub.Publish(userID, notifications.Event{
			Type:        notifications.EventItineraryGenerated,
			Destination: req.Destination,
			Message:     "Tu itinerario para " + req.Destination + " está listo",
		})
	}

	return c.JSON(http.StatusOK, h.buildResponse(req.Destination, normalized, false, generatedAt))
}

func (h *ItineraryHandler) buildResponse(destination, content string, fromCache bool, generatedAt time.Time) ItineraryResponse {
	vm := itinerary.Parse(content)
	resp := ItineraryResponse{
		Itinerary:   vm,
		Content:     content,
		FromCache:   fromCache,
		GeneratedAt: generatedAt,
	}
	if len(vm.Links) == 0 {
		resp.QuickLinks = itinerary.FallbackLinks(destination)
	}
	return resp
}

// DeleteCache стирает закешированный итинерарий направления, чтобы
// следующий запрос сгенерировал свежий.
func (h *ItineraryHandler) DeleteCache(c echo.Context) error {
	destination := c.QueryParam("destination")
	if destination == "" {
		return badRequest(c, "destination query parameter is required")
	}
	if err := h.cache.Delete(c.Request().Context(), destination); err != nil {
		slog.Error("itinerary cache delete failed", "destination", destination, "error", err)
		return serverError(c, "failed to clear cached itinerary")
	}
	return c.NoContent(http.StatusNoContent)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg})
}

func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": msg})
}

func serverError(c echo.Context, msg string) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg})
}
