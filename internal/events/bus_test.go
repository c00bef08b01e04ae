package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"game-library/internal/domain"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := NewBus()

	var got []Event
	bus.Subscribe(GameUpdated, func(ev Event) {
		got = append(got, ev)
	})

	game := &domain.Game{ID: "g1", Title: "Zelda"}
	bus.Publish(Event{Topic: GameUpdated, ID: "g1", Game: game})

	assert.Len(t, got, 1)
	assert.Equal(t, GameUpdated, got[0].Topic)
	assert.Same(t, game, got[0].Game)
}

func TestBusTopicIsolation(t *testing.T) {
	bus := NewBus()

	updated := 0
	deleted := 0
	bus.Subscribe(GameUpdated, func(Event) { updated++ })
	bus.Subscribe(GameDeleted, func(Event) { deleted++ })

	bus.Publish(Event{Topic: GameDeleted, ID: "g1"})

	assert.Zero(t, updated)
	assert.Equal(t, 1, deleted)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	token := bus.Subscribe(MetadataReloaded, func(Event) { calls++ })

	bus.Publish(Event{Topic: MetadataReloaded})
	bus.Unsubscribe(token)
	bus.Publish(Event{Topic: MetadataReloaded})

	assert.Equal(t, 1, calls)

	// unknown tokens are a no-op
	bus.Unsubscribe("nope")
}

func TestBusMultipleSubscribersInOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(CollectionUpdated, func(Event) { order = append(order, "first") })
	bus.Subscribe(CollectionUpdated, func(Event) { order = append(order, "second") })

	bus.Publish(Event{Topic: CollectionUpdated, Collection: &domain.Collection{ID: "c1", Title: "Favs"}})

	assert.Equal(t, []string{"first", "second"}, order)
}
