package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/konekta/backend/internal/models"
	"example.com/konekta/backend/internal/places"
)

// curatedRoutes — подборка направлений для дашборда, когда пользователь
// еще ничего не искал.
var curatedRoutes = []models.Route{
	{ID: "barcelona", Title: "Barcelona, España", Location: "Barcelona", Rating: 4.8, Duration: "4 días", Coordinates: models.Coordinates{Lat: 41.3874, Lon: 2.1686}},
	{ID: "paris", Title: "París, Francia", Location: "París", Rating: 4.9, Duration: "5 días", Coordinates: models.Coordinates{Lat: 48.8566, Lon: 2.3522}},
	{ID: "roma", Title: "Roma, Italia", Location: "Roma", Rating: 4.7, Duration: "4 días", Coordinates: models.Coordinates{Lat: 41.9028, Lon: 12.4964}},
	{ID: "lisboa", Title: "Lisboa, Portugal", Location: "Lisboa", Rating: 4.6, Duration: "3 días", Coordinates: models.Coordinates{Lat: 38.7223, Lon: -9.1393}},
	{ID: "tokio", Title: "Tokio, Japón", Location: "Tokio", Rating: 4.9, Duration: "7 días", Coordinates: models.Coordinates{Lat: 35.6764, Lon: 139.65}},
	{ID: "marrakech", Title: "Marrakech, Marruecos", Location: "Marrakech", Rating: 4.5, Duration: "3 días", Coordinates: models.Coordinates{Lat: 31.6295, Lon: -7.9811}},
	{ID: "reikiavik", Title: "Reikiavik, Islandia", Location: "Reikiavik", Rating: 4.7, Duration: "5 días", Coordinates: models.Coordinates{Lat: 64.1466, Lon: -21.9426}},
}

// Geocoder превращает свободный текст в список локаций.
type Geocoder interface {
	Geocode(ctx context.Context, text string, limit int) ([]places.Location, error)
}

type RoutesHandler struct {
	geo Geocoder
}

func NewRoutesHandler(geo Geocoder) *RoutesHandler {
	return &RoutesHandler{geo: geo}
}

// List отдает три случайных направления из подборки.
func (h *RoutesHandler) List(c echo.Context) error {
	picked := make([]models.Route, len(curatedRoutes))
	copy(picked, curatedRoutes)
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if len(picked) > 3 {
		picked = picked[:3]
	}
	return c.JSON(http.StatusOK, map[string]any{"routes": picked})
}

// Search геокодирует свободный текст и строит карточки направлений.
func (h *RoutesHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if strings.TrimSpace(query) == "" {
		return badRequest(c, "query parameter is required")
	}

	locations, err := h.geo.Geocode(c.Request().Context(), query, 5)
	if err != nil {
		if errors.Is(err, places.ErrMissingAPIKey) {
			return badRequest(c, "geocoding api is not configured")
		}
		slog.Error("route search failed", "query", query, "error", err)
		return serverError(c, "failed to search routes")
	}
	if len(locations) == 0 {
		return notFound(c, "no destinations found for that query")
	}

	routes := make([]models.Route, 0, len(locations))
	for i, loc := range locations {
		title := loc.Name
		if loc.Country != "" && !strings.Contains(title, loc.Country) {
			title = fmt.Sprintf("%s, %s", loc.Name, loc.Country)
		}
		routes = append(routes, models.Route{
			ID:          fmt.Sprintf("search-%d", i),
			Title:       title,
			Description: loc.Formatted,
			Location:    loc.Name,
			Rating:      4.5 + rand.Float64()*0.5,
			Duration:    fmt.Sprintf("%d días", 3+rand.Intn(5)),
			Coordinates: loc.Coordinates,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"routes": routes})
}
