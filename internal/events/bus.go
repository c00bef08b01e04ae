// Package events carries change notifications between UI subtrees that do
// not share state. Every payload contains the full updated entity (or its
// id for deletions) so each subscriber reconciles its own copy
// independently.
package events

import (
	"sync"

	"github.com/google/uuid"

	"game-library/internal/domain"
)

// Topic names one kind of catalog change.
type Topic string

const (
	GameUpdated       Topic = "gameUpdated"
	GameDeleted       Topic = "gameDeleted"
	GameAdded         Topic = "gameAdded"
	CollectionUpdated Topic = "collectionUpdated"
	CollectionDeleted Topic = "collectionDeleted"
	CategoryUpdated   Topic = "categoryUpdated"
	DeveloperUpdated  Topic = "developerUpdated"
	PublisherUpdated  Topic = "publisherUpdated"
	MetadataReloaded  Topic = "metadataReloaded"
)

// Event is one notification. Which payload field is set depends on the
// topic; deletions carry only the id.
type Event struct {
	Topic      Topic
	ID         string
	Game       *domain.Game
	Collection *domain.Collection
	Category   *domain.Category
	Tag        *domain.Tag
}

// Handler receives events for the topics it subscribed to.
type Handler func(Event)

type subscription struct {
	token   string
	handler Handler
}

// Bus is an in-process publish/subscribe registry keyed by topic.
// Dispatch is synchronous, in subscription order.
type Bus struct {
	mu   sync.Mutex
	subs map[Topic][]subscription
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]subscription)}
}

// Subscribe registers a handler for one topic and returns the token used
// to unsubscribe.
func (b *Bus) Subscribe(topic Topic, handler Handler) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	token := uuid.NewString()
	b.subs[topic] = append(b.subs[topic], subscription{token: token, handler: handler})
	return token
}

// Unsubscribe removes the subscription with the given token. Unknown
// tokens are ignored.
func (b *Bus) Unsubscribe(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for topic, subs := range b.subs {
		for i, sub := range subs {
			if sub.token == token {
				b.subs[topic] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the event to every current subscriber of its topic.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	subs := make([]subscription, len(b.subs[ev.Topic]))
	copy(subs, b.subs[ev.Topic])
	b.mu.Unlock()

	for _, sub := range subs {
		sub.handler(ev)
	}
}
