package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TripPreferences — параметры поездки, собранные у пользователя.
// После передачи генератору запись не мутируется; повтор строит новую копию.
type TripPreferences struct {
	Destination                string   `json:"destination"`
	DurationDays               int      `json:"duration_days,omitempty"`
	Duration                   string   `json:"duration,omitempty"`
	TravelType                 string   `json:"travel_type,omitempty"`
	Budget                     string   `json:"budget,omitempty"`
	BudgetLevel                string   `json:"budget_level,omitempty"`
	BudgetPriorities           []string `json:"budget_priorities,omitempty"`
	TravelStyle                string   `json:"travel_style,omitempty"`
	Interests                  []string `json:"interests,omitempty"`
	Accommodation              string   `json:"accommodation,omitempty"`
	TravelCompanions           string   `json:"travel_companions,omitempty"`
	AdventureLevel             int      `json:"adventure_level,omitempty"`
	EnvironmentalConsciousness int      `json:"environmental_consciousness,omitempty"`
	AdditionalRequests         string   `json:"additional_requests,omitempty"`
}

// ItineraryDocument — сырой результат генерации для одного направления.
// Одна запись на ключ направления, перезаписывается при регенерации.
type ItineraryDocument struct {
	DestinationKey string          `json:"destination_key"`
	Content        string          `json:"content"`
	Params         json.RawMessage `json:"params,omitempty"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// UserMessage — заметка пользователя о любимом направлении.
// Таблица нарочно минимальна: идентификатором служит сам пользователь.
type UserMessage struct {
	UserID  uuid.UUID `json:"user_id"`
	Message string    `json:"message"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Route — карточка направления в дашборде.
type Route struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Location    string      `json:"location"`
	Rating      float64     `json:"rating"`
	ImageURL    string      `json:"image_url,omitempty"`
	Duration    string      `json:"duration,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
}
