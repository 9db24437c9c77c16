package itinerary

import (
	"strings"
	"testing"
)

// TestNormalizeIdempotent проверяет, что повторная нормализация не меняет текст.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"## Día 1: Centro\nMañana: museo\nTarde\n**Noche:** cena\n\n\n\nfin",
		"texto sin marcadores",
		"## Día 1: Playa**Mañana** surf",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("normalize is not idempotent for %q:\nonce:  %q\ntwice: %q", in, once, twice)
		}
	}
}

// TestNormalizeMarkers проверяет приведение всех написаний маркера к каноничному.
func TestNormalizeMarkers(t *testing.T) {
	cases := map[string]string{
		"**Mañana:** museo": "**Mañana**: museo",
		"**Mañana** museo":  "**Mañana**: museo",
		"Mañana: museo":     "**Mañana**: museo",
		"Mañana":            "**Mañana**:",
		"**Tarde**: paseo":  "**Tarde**: paseo",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestNormalizeHeadingNewline проверяет перевод строки после заголовка дня.
func TestNormalizeHeadingNewline(t *testing.T) {
	got := Normalize("## Día 1: Centro**Mañana**: museo")
	if !strings.Contains(got, "## Día 1: Centro\n") {
		t.Fatalf("expected newline after heading, got %q", got)
	}
}

// TestNormalizeCollapsesBlankLines проверяет схлопывание лишних пустых строк.
func TestNormalizeCollapsesBlankLines(t *testing.T) {
	got := Normalize("uno\n\n\n\n\ndos")
	if got != "uno\n\ndos" {
		t.Fatalf("got %q", got)
	}
}
