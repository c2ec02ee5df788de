package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusdeck/internal/domain"
)

func waitFor(t *testing.T, ch <-chan DomainEvent) DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for event")
		return nil
	}
}

func TestPublishReachesSubscriber(t *testing.T) {
	t.Parallel()
	bus := New()
	t.Cleanup(bus.Close)

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventSelectionCleared, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(domain.SelectionClearedEvent{})

	e := waitFor(t, received)
	assert.Equal(t, EventSelectionCleared, e.Type())
}

func TestSubscriberOnlyGetsItsEventType(t *testing.T) {
	t.Parallel()
	bus := New()
	t.Cleanup(bus.Close)

	cleared := make(chan DomainEvent, 4)
	bus.Subscribe(EventSelectionCleared, func(e DomainEvent) {
		cleared <- e
	})

	bus.Publish(domain.SelectionChangedEvent{Added: []string{"A"}, Total: 1})
	bus.Publish(domain.SelectionClearedEvent{})

	e := waitFor(t, cleared)
	assert.Equal(t, EventSelectionCleared, e.Type(), "Subscriber should not see other event types")
	assert.Empty(t, cleared)
}

func TestEventsArriveInPublishOrder(t *testing.T) {
	t.Parallel()
	bus := New()
	t.Cleanup(bus.Close)

	received := make(chan DomainEvent, 8)
	bus.Subscribe(EventSelectionChanged, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(domain.SelectionChangedEvent{Added: []string{"A"}, Total: 1})
	bus.Publish(domain.SelectionChangedEvent{Added: []string{"B"}, Total: 2})

	first := waitFor(t, received).(SelectionChangedEvent)
	second := waitFor(t, received).(SelectionChangedEvent)
	assert.Equal(t, 1, first.Total)
	assert.Equal(t, 2, second.Total)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()
	bus := New()
	t.Cleanup(bus.Close)

	first := make(chan DomainEvent, 4)
	second := make(chan DomainEvent, 4)
	unsubscribe := bus.Subscribe(EventNoteChanged, func(e DomainEvent) {
		first <- e
	})
	bus.Subscribe(EventNoteChanged, func(e DomainEvent) {
		second <- e
	})

	bus.Publish(domain.NoteChangedEvent{Length: 1})
	waitFor(t, first)
	waitFor(t, second)

	unsubscribe()
	bus.Publish(domain.NoteChangedEvent{Length: 2})

	// The remaining subscriber still gets the event, the removed one does not
	e := waitFor(t, second).(NoteChangedEvent)
	require.Equal(t, 2, e.Length)
	assert.Empty(t, first, "Unsubscribed handler should not receive events")
}

func TestPanickingHandlerDoesNotKillDispatch(t *testing.T) {
	t.Parallel()
	bus := New()
	t.Cleanup(bus.Close)

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventError, func(e DomainEvent) {
		panic("boom")
	})
	bus.Subscribe(EventError, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(domain.ErrorEvent{Message: "oops"})

	e := waitFor(t, received)
	assert.Equal(t, EventError, e.Type())
}
