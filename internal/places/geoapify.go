package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"example.com/konekta/backend/internal/models"
)

const geoapifyBaseURL = "https://api.geoapify.com/v1/geocode"

// Location — результат геокодирования.
type Location struct {
	Name        string             `json:"name"`
	Formatted   string             `json:"formatted,omitempty"`
	Country     string             `json:"country,omitempty"`
	State       string             `json:"state,omitempty"`
	Coordinates models.Coordinates `json:"coordinates"`
}

// GeoClient — клиент геокодирования Geoapify.
type GeoClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGeoClient(apiKey string, timeout time.Duration) *GeoClient {
	return &GeoClient{
		apiKey:     apiKey,
		baseURL:    geoapifyBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *GeoClient) Configured() bool { return c.apiKey != "" }

type geoapifyResponse struct {
	Features []struct {
		Properties struct {
			Name      string  `json:"name"`
			City      string  `json:"city"`
			Country   string  `json:"country"`
			State     string  `json:"state"`
			Formatted string  `json:"formatted"`
			Lat       float64 `json:"lat"`
			Lon       float64 `json:"lon"`
		} `json:"properties"`
	} `json:"features"`
}

// Geocode ищет локации по свободному тексту.
func (c *GeoClient) Geocode(ctx context.Context, text string, limit int) ([]Location, error) {
	if !c.Configured() {
		return nil, ErrMissingAPIKey
	}
	if text == "" {
		return nil, ErrMissingQuery
	}
	if limit <= 0 {
		limit = 5
	}

	q := url.Values{}
	q.Set("text", text)
	q.Set("limit", fmt.Sprintf("%d", limit))
	q.Set("format", "geojson")
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("places: create geocode request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: send geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places: geoapify returned status %d", resp.StatusCode)
	}

	var parsed geoapifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("places: decode geocode response: %w", err)
	}

	locations := make([]Location, 0, len(parsed.Features))
	for _, f := range parsed.Features {
		p := f.Properties
		name := p.Name
		if name == "" {
			name = p.City
		}
		if name == "" {
			name = p.Country
		}
		if name == "" {
			name = "Lugar desconocido"
		}
		locations = append(locations, Location{
			Name:        name,
			Formatted:   p.Formatted,
			Country:     p.Country,
			State:       p.State,
			Coordinates: models.Coordinates{Lat: p.Lat, Lon: p.Lon},
		})
	}
	return locations, nil
}
