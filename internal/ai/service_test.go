package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"example.com/konekta/backend/internal/models"
)

type stubChat struct {
	reply    string
	err      error
	messages []Message
}

func (s *stubChat) Chat(_ context.Context, messages []Message) (string, error) {
	s.messages = messages
	return s.reply, s.err
}

// TestGenerateRequiresDestination проверяет отказ без направления и без
// обращения к провайдеру.
func TestGenerateRequiresDestination(t *testing.T) {
	stub := &stubChat{reply: "## Día 1: algo"}
	svc := NewService(stub)

	_, err := svc.Generate(context.Background(), models.TripPreferences{})
	if !errors.Is(err, ErrMissingDestination) {
		t.Fatalf("expected ErrMissingDestination, got %v", err)
	}
	if stub.messages != nil {
		t.Fatal("provider must not be called without destination")
	}
}

// TestGenerateEmptyContent проверяет отбраковку пустого ответа провайдера.
func TestGenerateEmptyContent(t *testing.T) {
	svc := NewService(&stubChat{reply: "   \n"})
	_, err := svc.Generate(context.Background(), models.TripPreferences{Destination: "Madrid"})
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

// TestGeneratePromptOmitsAbsentFields проверяет, что незаполненные
// предпочтения не попадают в промпт, а заполненные попадают.
func TestGeneratePromptOmitsAbsentFields(t *testing.T) {
	stub := &stubChat{reply: "## Día 1: Centro"}
	svc := NewService(stub)

	prefs := models.TripPreferences{
		Destination: "Valencia",
		DurationDays: 2,
		Budget:      "medio",
		Interests:   []string{"playa", "gastronomía"},
	}
	if _, err := svc.Generate(context.Background(), prefs); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(stub.messages) != 2 || stub.messages[0].Role != "system" {
		t.Fatalf("unexpected messages: %+v", stub.messages)
	}
	prompt := stub.messages[1].Content
	if !strings.Contains(prompt, "Valencia") || !strings.Contains(prompt, "2 días") {
		t.Errorf("prompt misses destination or days: %q", prompt)
	}
	if !strings.Contains(prompt, "Presupuesto: medio") {
		t.Errorf("prompt misses budget: %q", prompt)
	}
	if !strings.Contains(prompt, "playa, gastronomía") {
		t.Errorf("prompt misses interests: %q", prompt)
	}
	if strings.Contains(prompt, "Alojamiento") || strings.Contains(prompt, "Nivel de aventura") {
		t.Errorf("prompt contains absent fields: %q", prompt)
	}
}

// TestOpenAIClientMissingKey проверяет ошибку конфигурации без сетевого вызова.
func TestOpenAIClientMissingKey(t *testing.T) {
	c := NewOpenAIClient("", "", "gpt-4o", 0, time.Second)
	_, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hola"}})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

// TestOpenAIClientChat проверяет счастливый путь через тестовый сервер.
func TestOpenAIClientChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"## Día 1: Centro"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("test-key", srv.URL, "gpt-4o", 1000, time.Second)
	got, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hola"}})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got != "## Día 1: Centro" {
		t.Fatalf("got %q", got)
	}
}

// TestOpenAIClientUpstreamError проверяет перенос статуса и сообщения провайдера.
func TestOpenAIClientUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("test-key", srv.URL, "gpt-4o", 0, time.Second)
	_, err := c.Chat(context.Background(), nil)

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusTooManyRequests || upstream.Message != "rate limit exceeded" {
		t.Fatalf("unexpected upstream error: %+v", upstream)
	}
}
