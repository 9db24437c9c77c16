package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/konekta/backend/internal/models"
)

// MessageRepository хранит заметки пользователей о направлениях.
type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create добавляет заметку пользователя.
func (r *MessageRepository) Create(ctx context.Context, userID uuid.UUID, message string) (models.UserMessage, error) {
	if strings.TrimSpace(message) == "" {
		return models.UserMessage{}, fmt.Errorf("%w: message is empty", ErrInvalid)
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO user_messages (user_id, message) VALUES ($1, $2)`,
		userID, message)
	if err != nil {
		return models.UserMessage{}, fmt.Errorf("insert user message: %w", err)
	}
	return models.UserMessage{UserID: userID, Message: message}, nil
}

// ListByUser возвращает заметки пользователя в порядке добавления.
func (r *MessageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserMessage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, message FROM user_messages WHERE user_id = $1`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("select user messages: %w", err)
	}
	defer rows.Close()

	var messages []models.UserMessage
	for rows.Next() {
		var m models.UserMessage
		if err := rows.Scan(&m.UserID, &m.Message); err != nil {
			return nil, fmt.Errorf("scan user message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// DeleteByUser удаляет все заметки пользователя.
func (r *MessageRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_messages WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user messages: %w", err)
	}
	return nil
}
