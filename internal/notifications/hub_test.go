package notifications

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestHubPublish проверяет доставку события всем подпискам пользователя
// и изоляцию между пользователями.
func TestHubPublish(t *testing.T) {
	h := NewHub()
	alice, bob := uuid.New(), uuid.New()

	ch1 := h.Subscribe(alice)
	ch2 := h.Subscribe(alice)
	chBob := h.Subscribe(bob)

	h.Publish(alice, Event{Type: EventItineraryGenerated, Destination: "Madrid"})

	for i, ch := range []chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			if ev.Type != EventItineraryGenerated || ev.Destination != "Madrid" {
				t.Fatalf("subscriber %d got %+v", i, ev)
			}
			if ev.CreatedAt.IsZero() {
				t.Fatal("created_at not filled")
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d got nothing", i)
		}
	}

	select {
	case ev := <-chBob:
		t.Fatalf("bob got someone else's event: %+v", ev)
	default:
	}
}

// TestHubUnsubscribe проверяет закрытие канала и очистку пустых подписок.
func TestHubUnsubscribe(t *testing.T) {
	h := NewHub()
	user := uuid.New()
	ch := h.Subscribe(user)

	h.Unsubscribe(user, ch)
	if _, open := <-ch; open {
		t.Fatal("channel must be closed")
	}
	if got := h.SubscriberCount(user); got != 0 {
		t.Fatalf("subscriber count = %d", got)
	}

	// Повторная отписка и публикация без подписчиков безопасны.
	h.Unsubscribe(user, ch)
	h.Publish(user, Event{Type: EventItineraryEmailSent})
}

// TestHubSlowSubscriber проверяет, что полный буфер не блокирует публикацию.
func TestHubSlowSubscriber(t *testing.T) {
	h := NewHub()
	user := uuid.New()
	ch := h.Subscribe(user)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			h.Publish(user, Event{Type: EventItineraryGenerated})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
	_ = ch
}
