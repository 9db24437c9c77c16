package repository

import "testing"

// TestCacheKey проверяет формат ключа и чувствительность к регистру.
func TestCacheKey(t *testing.T) {
	if got := CacheKey("Madrid"); got != "itinerary-Madrid" {
		t.Fatalf("got %q", got)
	}
	if CacheKey("Madrid") == CacheKey("madrid") {
		t.Fatal("cache key must be case sensitive")
	}
}
