package ai

import (
	"context"
	"strings"

	"example.com/konekta/backend/internal/models"
)

// Service реализует Generator поверх чат-клиента: собирает промпт,
// вызывает провайдера и отбраковывает пустые ответы.
type Service struct {
	client ChatClient
}

func NewService(client ChatClient) *Service {
	return &Service{client: client}
}

// Generate возвращает сырой Markdown-текст итинерария. Текст отдается
// дословно: разбор и нормализация — забота вызывающего.
func (s *Service) Generate(ctx context.Context, prefs models.TripPreferences) (string, error) {
	if strings.TrimSpace(prefs.Destination) == "" {
		return "", ErrMissingDestination
	}

	content, err := s.client.Chat(ctx, []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: BuildPrompt(prefs)},
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}
	return content, nil
}
