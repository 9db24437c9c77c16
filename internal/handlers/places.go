package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/konekta/backend/internal/places"
)

// PlaceFinder — поиск мест и карточки мест.
type PlaceFinder interface {
	Search(ctx context.Context, params places.SearchParams) ([]places.Place, error)
	Details(ctx context.Context, placeID string) (places.PlaceDetails, error)
}

type PlacesHandler struct {
	finder PlaceFinder
}

func NewPlacesHandler(finder PlaceFinder) *PlacesHandler {
	return &PlacesHandler{finder: finder}
}

// Search проксирует поиск мест, не раскрывая ключ API клиенту.
func (h *PlacesHandler) Search(c echo.Context) error {
	params := places.SearchParams{
		Query:  c.QueryParam("query"),
		Lat:    c.QueryParam("lat"),
		Lng:    c.QueryParam("lng"),
		Radius: c.QueryParam("radius"),
		Type:   c.QueryParam("type"),
	}

	results, err := h.finder.Search(c.Request().Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, places.ErrMissingAPIKey):
			return badRequest(c, "places api is not configured")
		case errors.Is(err, places.ErrMissingQuery):
			return badRequest(c, "query or lat/lng parameters are required")
		default:
			slog.Error("places search failed", "error", err)
			return serverError(c, "failed to search places")
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"places": results})
}

// Details отдает расширенную карточку места.
func (h *PlacesHandler) Details(c echo.Context) error {
	placeID := c.QueryParam("placeId")
	if placeID == "" {
		return badRequest(c, "placeId query parameter is required")
	}

	details, err := h.finder.Details(c.Request().Context(), placeID)
	if err != nil {
		if errors.Is(err, places.ErrMissingAPIKey) {
			return badRequest(c, "places api is not configured")
		}
		slog.Error("place details failed", "place_id", placeID, "error", err)
		return serverError(c, "failed to load place details")
	}
	return c.JSON(http.StatusOK, map[string]any{"place": details})
}
