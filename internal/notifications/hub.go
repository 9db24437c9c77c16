package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Типы событий, которые бэкенд шлет в поток уведомлений пользователя.
const (
	EventItineraryGenerated = "itinerary_generated"
	EventItineraryEmailSent = "itinerary_email_sent"
)

// Event — одно уведомление для пользователя.
type Event struct {
	Type        string    `json:"type"`
	Destination string    `json:"destination,omitempty"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Hub раздает события по открытым SSE-подпискам пользователя. Подписок у
// одного пользователя может быть несколько (несколько вкладок).
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[chan Event]struct{}
}

// NewHub создает пустой хаб.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[uuid.UUID]map[chan Event]struct{})}
}

// Subscribe открывает подписку пользователя. Возвращенный канал закрывает
// только Unsubscribe.
func (h *Hub) Subscribe(userID uuid.UUID) chan Event {
	ch := make(chan Event, 8)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan Event]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}
	return ch
}

// Unsubscribe закрывает подписку и освобождает канал.
func (h *Hub) Unsubscribe(userID uuid.UUID, ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.subscribers[userID]
	if !ok {
		return
	}
	if _, ok := subs[ch]; !ok {
		return
	}
	delete(subs, ch)
	close(ch)
	if len(subs) == 0 {
		delete(h.subscribers, userID)
	}
}

// Publish рассылает событие по подпискам пользователя. Отправка не
// блокирует: медленный подписчик с полным буфером событие теряет.
func (h *Hub) Publish(userID uuid.UUID, event Event) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers[userID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount возвращает число открытых подписок пользователя.
func (h *Hub) SubscriberCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}
