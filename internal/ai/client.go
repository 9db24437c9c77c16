package ai

import (
	"context"
	"errors"
	"fmt"

	"example.com/konekta/backend/internal/models"
)

var (
	// ErrMissingAPIKey — генератор не сконфигурирован: нет ключа API.
	ErrMissingAPIKey = errors.New("ai: api key is not configured")
	// ErrMissingDestination — запрос без направления не имеет смысла.
	ErrMissingDestination = errors.New("ai: destination is required")
	// ErrEmptyContent — провайдер ответил успешно, но без текста.
	ErrEmptyContent = errors.New("ai: provider returned empty content")
)

// UpstreamError — ошибка на стороне провайдера: сетевой сбой выражается
// оберткой, а HTTP-ошибка и битое тело ответа — этим типом.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ai: upstream error (status %d): %s", e.StatusCode, e.Message)
}

// Message — одна реплика диалога с моделью.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generator порождает текст итинерария по предпочтениям путешественника.
type Generator interface {
	Generate(ctx context.Context, prefs models.TripPreferences) (string, error)
}

// ChatClient — транспортный шов: низкоуровневый клиент чат-комплишенов.
type ChatClient interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
