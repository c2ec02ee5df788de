package selection

import (
	"focusdeck/internal/eventbus"
)

// Service maintains the set of selected item identifiers. Identifiers are
// opaque strings supplied by the caller; toggling an identifier the service
// has never seen simply adds it. All operations are total and intended for
// single-threaded use from the update loop.
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new selection service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{
			SelectedItems: make(map[string]bool),
		},
		bus: bus,
	}
}

// Toggle flips membership for the given identifier and returns the new
// membership state.
func (s *Service) Toggle(id string) bool {
	var added, removed []string
	var selected bool

	if s.state.SelectedItems[id] {
		delete(s.state.SelectedItems, id)
		removed = append(removed, id)
	} else {
		s.state.SelectedItems[id] = true
		added = append(added, id)
		selected = true
	}

	s.bus.Publish(eventbus.SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(s.state.SelectedItems),
	})

	return selected
}

// SelectAll adds every identifier in ids that is not already selected.
// Identifiers already present are left untouched, so repeated calls with
// the same ids are a no-op.
func (s *Service) SelectAll(ids []string) {
	var added []string
	for _, id := range ids {
		if !s.state.SelectedItems[id] {
			s.state.SelectedItems[id] = true
			added = append(added, id)
		}
	}

	if len(added) > 0 {
		s.bus.Publish(eventbus.AllSelectedEvent{
			IDs:   added,
			Total: len(s.state.SelectedItems),
		})
	}
}

// ClearAll empties the selection unconditionally
func (s *Service) ClearAll() {
	s.state.SelectedItems = make(map[string]bool)

	s.bus.Publish(eventbus.SelectionClearedEvent{})
}

// IsSelected checks membership without side effects
func (s *Service) IsSelected(id string) bool {
	return s.state.SelectedItems[id]
}

// Count returns the number of selected items
func (s *Service) Count() int {
	return len(s.state.SelectedItems)
}

// SelectedIDs returns a snapshot of the current members. Order is not
// guaranteed to match insertion order.
func (s *Service) SelectedIDs() []string {
	selected := make([]string, 0, len(s.state.SelectedItems))
	for id := range s.state.SelectedItems {
		selected = append(selected, id)
	}
	return selected
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return len(s.state.SelectedItems) > 0
}

// Remove drops specific identifiers from the selection (e.g. when the
// catalog no longer offers them)
func (s *Service) Remove(ids []string) {
	var removed []string
	for _, id := range ids {
		if s.state.SelectedItems[id] {
			delete(s.state.SelectedItems, id)
			removed = append(removed, id)
		}
	}

	if len(removed) > 0 {
		s.bus.Publish(eventbus.SelectionChangedEvent{
			Removed: removed,
			Total:   len(s.state.SelectedItems),
		})
	}
}
