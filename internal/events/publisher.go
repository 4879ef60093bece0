// Package events broadcasts committed store mutations to a Redis channel so
// other processes (mobile push fan-out, dashboards) can follow the store
// without polling. Publish failures are logged and never interrupt the
// dispatch path.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tahirli/sofrachef-backend/internal/store"
)

// ActionEvent is the wire form of one committed mutation.
type ActionEvent struct {
	Type          store.ActionType `json:"type"`
	At            time.Time        `json:"at"`
	Bookings      int              `json:"bookings"`
	Notifications int              `json:"notifications"`
}

// Publisher forwards committed actions to Redis.
type Publisher struct {
	client  *redis.Client
	channel string
}

// NewPublisher creates a publisher on the given channel.
func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

// Attach subscribes the publisher to the store and returns the unsubscribe
// func. Events are serialized off the dispatch goroutine; the listener only
// enqueues.
func (p *Publisher) Attach(s *store.Store) func() {
	events := make(chan ActionEvent, 256)
	unsubscribe := s.Subscribe(func(state store.AppState, a store.Action) {
		ev := ActionEvent{
			Type:          a.Type,
			At:            time.Now().UTC(),
			Bookings:      len(state.Bookings),
			Notifications: len(state.Notifications),
		}
		select {
		case events <- ev:
		default:
			// Dropping is preferable to stalling dispatch when Redis
			// falls behind.
			log.Printf("events: channel full, dropping %s", a.Type)
		}
	})

	done := make(chan struct{})
	go func() {
		for ev := range events {
			p.publish(ev)
		}
		close(done)
	}()

	return func() {
		unsubscribe()
		close(events)
		<-done
	}
}

func (p *Publisher) publish(ev ActionEvent) {
	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("events: marshal failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := p.client.Publish(ctx, p.channel, body).Err(); err != nil {
		log.Printf("events: publish %s failed: %v", ev.Type, err)
	}
}
