package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/konekta/backend/internal/models"
)

// CacheKey строит ключ кеша для направления. Ключ чувствителен к регистру:
// «Madrid» и «madrid» кешируются раздельно.
func CacheKey(destination string) string {
	return "itinerary-" + destination
}

// ItineraryCacheRepository хранит по одному сгенерированному итинерарию
// на направление. Повторная генерация перезаписывает запись.
type ItineraryCacheRepository struct {
	db *pgxpool.Pool
}

func NewItineraryCacheRepository(db *pgxpool.Pool) *ItineraryCacheRepository {
	return &ItineraryCacheRepository{db: db}
}

// Get возвращает закешированный итинерарий направления или ErrNotFound.
func (r *ItineraryCacheRepository) Get(ctx context.Context, destination string) (models.ItineraryDocument, error) {
	var doc models.ItineraryDocument
	err := r.db.QueryRow(ctx,
		`SELECT destination_key, content, params, generated_at
		 FROM itinerary_cache WHERE destination_key = $1`,
		CacheKey(destination)).
		Scan(&doc.DestinationKey, &doc.Content, &doc.Params, &doc.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ItineraryDocument{}, ErrNotFound
	}
	if err != nil {
		return models.ItineraryDocument{}, fmt.Errorf("select cached itinerary: %w", err)
	}
	return doc, nil
}

// Put сохраняет итинерарий, затирая прежнюю запись направления.
func (r *ItineraryCacheRepository) Put(ctx context.Context, doc models.ItineraryDocument) error {
	if doc.Params == nil {
		doc.Params = json.RawMessage(`{}`)
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO itinerary_cache (destination_key, content, params, generated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (destination_key) DO UPDATE
		 SET content = EXCLUDED.content,
		     params = EXCLUDED.params,
		     generated_at = EXCLUDED.generated_at`,
		doc.DestinationKey, doc.Content, doc.Params, doc.GeneratedAt)
	if err != nil {
		return fmt.Errorf("upsert cached itinerary: %w", err)
	}
	return nil
}

// Delete убирает запись направления из кеша. Отсутствие записи не ошибка.
func (r *ItineraryCacheRepository) Delete(ctx context.Context, destination string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM itinerary_cache WHERE destination_key = $1`,
		CacheKey(destination))
	if err != nil {
		return fmt.Errorf("delete cached itinerary: %w", err)
	}
	return nil
}
