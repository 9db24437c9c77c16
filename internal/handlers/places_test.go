package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"example.com/konekta/backend/internal/places"
)

type stubFinder struct {
	results []places.Place
	details places.PlaceDetails
	err     error
	params  places.SearchParams
}

func (s *stubFinder) Search(_ context.Context, params places.SearchParams) ([]places.Place, error) {
	s.params = params
	return s.results, s.err
}

func (s *stubFinder) Details(_ context.Context, _ string) (places.PlaceDetails, error) {
	return s.details, s.err
}

type stubGeocoder struct {
	locations []places.Location
	err       error
	text      string
}

func (s *stubGeocoder) Geocode(_ context.Context, text string, _ int) ([]places.Location, error) {
	s.text = text
	return s.locations, s.err
}

func getRequest(e *echo.Echo, path string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

// TestPlacesSearchResponseShape проверяет ключ places в теле ответа поиска.
func TestPlacesSearchResponseShape(t *testing.T) {
	finder := &stubFinder{results: []places.Place{{ID: "p1", Name: "Museo del Prado"}}}
	h := NewPlacesHandler(finder)
	e := newTestEcho()

	rec, c := getRequest(e, "/api/places?query=museos+en+Madrid")
	if err := h.Search(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if finder.params.Query != "museos en Madrid" {
		t.Fatalf("query param = %q", finder.params.Query)
	}

	var resp struct {
		Places []places.Place `json:"places"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Places) != 1 || resp.Places[0].Name != "Museo del Prado" {
		t.Fatalf("places = %+v, body %s", resp.Places, rec.Body.String())
	}
}

// TestPlacesDetailsResponseShape проверяет ключ place в теле карточки места.
func TestPlacesDetailsResponseShape(t *testing.T) {
	finder := &stubFinder{details: places.PlaceDetails{Place: places.Place{ID: "p1", Name: "Museo del Prado"}}}
	h := NewPlacesHandler(finder)
	e := newTestEcho()

	rec, c := getRequest(e, "/api/places/details?placeId=p1")
	if err := h.Details(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	var resp struct {
		Place places.PlaceDetails `json:"place"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Place.Name != "Museo del Prado" {
		t.Fatalf("place = %+v, body %s", resp.Place, rec.Body.String())
	}
}

// TestPlacesSearchNotConfigured проверяет 400 без ключа API.
func TestPlacesSearchNotConfigured(t *testing.T) {
	h := NewPlacesHandler(&stubFinder{err: places.ErrMissingAPIKey})
	e := newTestEcho()

	rec, c := getRequest(e, "/api/places?query=x")
	if err := h.Search(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestRoutesSearchQueryParam проверяет имя параметра query и отказ без него.
func TestRoutesSearchQueryParam(t *testing.T) {
	geo := &stubGeocoder{locations: []places.Location{{Name: "Sevilla", Country: "España"}}}
	h := NewRoutesHandler(geo)
	e := newTestEcho()

	rec, c := getRequest(e, "/api/routes/search?query=Sevilla")
	if err := h.Search(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if geo.text != "Sevilla" {
		t.Fatalf("geocoded text = %q", geo.text)
	}

	rec2, c2 := getRequest(e, "/api/routes/search")
	if err := h.Search(c2); err != nil {
		t.Fatalf("handler without query: %v", err)
	}
	if rec2.Code != http.StatusBadRequest {
		t.Fatalf("status without query = %d, want 400", rec2.Code)
	}
}
