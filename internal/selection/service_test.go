package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusdeck/internal/eventbus"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	bus := eventbus.New()
	t.Cleanup(bus.Close)
	return NewService(bus)
}

func TestToggleAddsAndRemoves(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	require.True(t, svc.Toggle("A"), "First toggle should select")
	assert.True(t, svc.IsSelected("A"))
	assert.Equal(t, 1, svc.Count())

	require.True(t, svc.Toggle("B"), "Toggling a new id should select it")
	assert.Equal(t, 2, svc.Count())

	require.False(t, svc.Toggle("A"), "Second toggle should deselect")
	assert.False(t, svc.IsSelected("A"))
	assert.True(t, svc.IsSelected("B"))
	assert.Equal(t, 1, svc.Count())
}

func TestToggleParity(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	// Even number of toggles lands back on unselected, odd on selected
	for i := 1; i <= 6; i++ {
		svc.Toggle("X")
		assert.Equal(t, i%2 == 1, svc.IsSelected("X"), "parity after %d toggles", i)
	}
}

func TestCountMatchesSnapshot(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	svc.Toggle("A")
	svc.Toggle("B")
	svc.Toggle("C")
	svc.Toggle("B")

	assert.Equal(t, svc.Count(), len(svc.SelectedIDs()), "Count should equal snapshot length")
	assert.ElementsMatch(t, []string{"A", "C"}, svc.SelectedIDs())
}

func TestClearAll(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	svc.Toggle("A")
	svc.Toggle("B")
	require.True(t, svc.HasSelection())

	svc.ClearAll()
	assert.Equal(t, 0, svc.Count())
	assert.False(t, svc.HasSelection())
	assert.Empty(t, svc.SelectedIDs())

	// Clearing an empty set is fine too
	svc.ClearAll()
	assert.Equal(t, 0, svc.Count())
}

func TestSelectAllIsIdempotentUnion(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	svc.SelectAll([]string{"A", "B", "C"})
	assert.Equal(t, 3, svc.Count())

	// Repeating the same call changes nothing
	svc.SelectAll([]string{"A", "B", "C"})
	assert.Equal(t, 3, svc.Count())

	// Overlapping call only adds the new member
	svc.SelectAll([]string{"B", "D"})
	assert.Equal(t, 4, svc.Count())
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, svc.SelectedIDs())
}

func TestSelectAllKeepsExistingSelection(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	svc.Toggle("A")
	svc.SelectAll([]string{"B", "C"})

	assert.True(t, svc.IsSelected("A"), "SelectAll must not drop prior members")
	assert.Equal(t, 3, svc.Count())
}

func TestRemove(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	svc.SelectAll([]string{"A", "B", "C"})
	svc.Remove([]string{"B", "Z"})

	assert.Equal(t, 2, svc.Count())
	assert.False(t, svc.IsSelected("B"))
	assert.True(t, svc.IsSelected("A"))
}

func TestExampleSequence(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	svc.Toggle("A")
	assert.Equal(t, 1, svc.Count())

	svc.Toggle("B")
	assert.Equal(t, 2, svc.Count())

	svc.Toggle("A")
	assert.Equal(t, 1, svc.Count())
	assert.ElementsMatch(t, []string{"B"}, svc.SelectedIDs())

	svc.ClearAll()
	assert.Equal(t, 0, svc.Count())
}

func TestSelectionEventsPublished(t *testing.T) {
	t.Parallel()
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	events := make(chan eventbus.DomainEvent, 16)
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		events <- e
	})

	svc := NewService(bus)
	svc.Toggle("A")

	var e eventbus.DomainEvent
	select {
	case e = <-events:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for SelectionChangedEvent")
	}
	changed, ok := e.(eventbus.SelectionChangedEvent)
	require.True(t, ok, "Expected a SelectionChangedEvent")
	assert.Equal(t, []string{"A"}, changed.Added)
	assert.Empty(t, changed.Removed)
	assert.Equal(t, 1, changed.Total)
}
