package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrMissingAPIKey — прокси не сконфигурирован.
	ErrMissingAPIKey = errors.New("places: api key is not configured")
	// ErrMissingQuery — нет ни текстового запроса, ни координат.
	ErrMissingQuery = errors.New("places: query or coordinates required")
)

const googleBaseURL = "https://maps.googleapis.com/maps/api/place"

// Place — карточка места в ответе поиска.
type Place struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address,omitempty"`
	Rating   float64  `json:"rating,omitempty"`
	Types    []string `json:"types,omitempty"`
	PhotoURL string   `json:"photo_url,omitempty"`
}

// PlaceDetails — расширенная карточка места.
type PlaceDetails struct {
	Place
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"website,omitempty"`
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
	PhotoURLs   []string `json:"photo_urls,omitempty"`
}

// SearchParams — параметры поиска мест. Нужен либо Query, либо пара Lat/Lng.
type SearchParams struct {
	Query  string
	Lat    string
	Lng    string
	Radius string
	Type   string
}

// Client — прокси к Google Places. Ключ API не покидает бэкенд.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    googleBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Configured сообщает, задан ли ключ API.
func (c *Client) Configured() bool { return c.apiKey != "" }

type googleSearchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		PlaceID          string   `json:"place_id"`
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Vicinity         string   `json:"vicinity"`
		Rating           float64  `json:"rating"`
		Types            []string `json:"types"`
		Photos           []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
}

// Search ищет места текстом или рядом с координатами.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]Place, error) {
	if !c.Configured() {
		return nil, ErrMissingAPIKey
	}
	byText := params.Query != ""
	byLocation := params.Lat != "" && params.Lng != ""
	if !byText && !byLocation {
		return nil, ErrMissingQuery
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	endpoint := "/textsearch/json"
	if byText {
		q.Set("query", params.Query)
	} else {
		endpoint = "/nearbysearch/json"
		q.Set("location", params.Lat+","+params.Lng)
		radius := params.Radius
		if radius == "" {
			radius = "5000"
		}
		q.Set("radius", radius)
	}
	if params.Type != "" {
		q.Set("type", params.Type)
	}

	var parsed googleSearchResponse
	if err := c.get(ctx, endpoint, q, &parsed); err != nil {
		return nil, err
	}
	if parsed.Status != "OK" && parsed.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places: google api status %s: %s", parsed.Status, parsed.ErrorMessage)
	}

	results := make([]Place, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		address := r.FormattedAddress
		if address == "" {
			address = r.Vicinity
		}
		p := Place{
			ID:      r.PlaceID,
			Name:    r.Name,
			Address: address,
			Rating:  r.Rating,
			Types:   r.Types,
		}
		if len(r.Photos) > 0 {
			p.PhotoURL = c.photoURL(r.Photos[0].PhotoReference, 400)
		}
		results = append(results, p)
	}
	return results, nil
}

type googleDetailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		PlaceID          string   `json:"place_id"`
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Rating           float64  `json:"rating"`
		Types            []string `json:"types"`
		FormattedPhone   string   `json:"formatted_phone_number"`
		Website          string   `json:"website"`
		OpeningHours     *struct {
			OpenNow     bool     `json:"open_now"`
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"result"`
}

// Details возвращает расширенную карточку места по его идентификатору.
func (c *Client) Details(ctx context.Context, placeID string) (PlaceDetails, error) {
	if !c.Configured() {
		return PlaceDetails{}, ErrMissingAPIKey
	}
	if placeID == "" {
		return PlaceDetails{}, ErrMissingQuery
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("place_id", placeID)
	q.Set("fields", "place_id,name,formatted_address,rating,types,formatted_phone_number,website,opening_hours,photos")

	var parsed googleDetailsResponse
	if err := c.get(ctx, "/details/json", q, &parsed); err != nil {
		return PlaceDetails{}, err
	}
	if parsed.Status != "OK" {
		return PlaceDetails{}, fmt.Errorf("places: google api status %s: %s", parsed.Status, parsed.ErrorMessage)
	}

	r := parsed.Result
	details := PlaceDetails{
		Place: Place{
			ID:      r.PlaceID,
			Name:    r.Name,
			Address: r.FormattedAddress,
			Rating:  r.Rating,
			Types:   r.Types,
		},
		Phone:   r.FormattedPhone,
		Website: r.Website,
	}
	if r.OpeningHours != nil {
		openNow := r.OpeningHours.OpenNow
		details.OpenNow = &openNow
		details.WeekdayText = r.OpeningHours.WeekdayText
	}
	for _, photo := range r.Photos {
		details.PhotoURLs = append(details.PhotoURLs, c.photoURL(photo.PhotoReference, 800))
	}
	return details, nil
}

func (c *Client) photoURL(reference string, maxWidth int) string {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("photoreference", reference)
	q.Set("maxwidth", fmt.Sprintf("%d", maxWidth))
	return c.baseURL + "/photo?" + q.Encode()
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("places: create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places: google api returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("places: decode response: %w", err)
	}
	return nil
}
