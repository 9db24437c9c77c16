package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestSearchRequiresConfiguration проверяет ошибки конфигурации и параметров
// до любого сетевого вызова.
func TestSearchRequiresConfiguration(t *testing.T) {
	c := NewClient("", time.Second)
	if _, err := c.Search(context.Background(), SearchParams{Query: "museo"}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	c = NewClient("key", time.Second)
	if _, err := c.Search(context.Background(), SearchParams{Lat: "40.4"}); !errors.Is(err, ErrMissingQuery) {
		t.Fatalf("expected ErrMissingQuery for lone lat, got %v", err)
	}
}

// TestSearchMapsResults проверяет маппинг ответа Google и сборку ссылки на фото.
func TestSearchMapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/textsearch") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("query") != "museos en Madrid" {
			t.Errorf("query param = %q", r.URL.Query().Get("query"))
		}
		w.Write([]byte(`{"status":"OK","results":[{
			"place_id":"p1","name":"Museo del Prado",
			"formatted_address":"Calle de Ruiz de Alarcón 23","rating":4.8,
			"types":["museum"],"photos":[{"photo_reference":"ref1"}]}]}`))
	}))
	defer srv.Close()

	c := NewClient("key", time.Second)
	c.baseURL = srv.URL

	got, err := c.Search(context.Background(), SearchParams{Query: "museos en Madrid"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Museo del Prado" {
		t.Fatalf("results = %+v", got)
	}
	if !strings.Contains(got[0].PhotoURL, "photoreference=ref1") {
		t.Errorf("photo url = %q", got[0].PhotoURL)
	}
}

// TestSearchUpstreamStatus проверяет перенос нештатного статуса Google в ошибку.
func TestSearchUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key"}`))
	}))
	defer srv.Close()

	c := NewClient("key", time.Second)
	c.baseURL = srv.URL

	_, err := c.Search(context.Background(), SearchParams{Query: "x"})
	if err == nil || !strings.Contains(err.Error(), "REQUEST_DENIED") {
		t.Fatalf("expected status error, got %v", err)
	}
}

// TestGeocode проверяет маппинг ответа Geoapify с запасными именами.
func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("text") != "Sevilla" {
			t.Errorf("text param = %q", r.URL.Query().Get("text"))
		}
		w.Write([]byte(`{"features":[
			{"properties":{"name":"Sevilla","country":"España","lat":37.39,"lon":-5.99}},
			{"properties":{"city":"Sevilla Este","country":"España","lat":37.4,"lon":-5.9}}]}`))
	}))
	defer srv.Close()

	c := NewGeoClient("key", time.Second)
	c.baseURL = srv.URL

	got, err := c.Geocode(context.Background(), "Sevilla", 5)
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(got))
	}
	if got[0].Name != "Sevilla" || got[1].Name != "Sevilla Este" {
		t.Fatalf("names = %q, %q", got[0].Name, got[1].Name)
	}
	if got[0].Coordinates.Lat != 37.39 {
		t.Errorf("lat = %v", got[0].Coordinates.Lat)
	}
}
