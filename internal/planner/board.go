// Package planner exposes the read API other code consumes: which items
// are selected, how many, and the bulk actions, without reaching into the
// selection service directly.
package planner

import (
	"focusdeck/internal/domain"
	"focusdeck/internal/selection"
)

// Board ties the item catalog to the selection service
type Board struct {
	store     ItemStore
	selection *selection.Service
}

// NewBoard creates a board over the given catalog and selection service
func NewBoard(store ItemStore, sel *selection.Service) *Board {
	return &Board{
		store:     store,
		selection: sel,
	}
}

// SelectedItems returns the catalog entries that are currently selected,
// in catalog order. Selected identifiers with no catalog entry are skipped.
func (b *Board) SelectedItems() []domain.FocusItem {
	var result []domain.FocusItem
	for _, item := range b.store.GetAllItems() {
		if b.selection.IsSelected(item.ID) {
			result = append(result, item)
		}
	}
	return result
}

// SelectedCount returns the size of the selection
func (b *Board) SelectedCount() int {
	return b.selection.Count()
}

// IsItemSelected reports membership for one identifier. Empty identifiers
// are never selected.
func (b *Board) IsItemSelected(id string) bool {
	if id == "" {
		return false
	}
	return b.selection.IsSelected(id)
}

// ToggleItem flips selection for one identifier and returns the new
// membership state. Empty identifiers are rejected here so they never
// reach the selection set.
func (b *Board) ToggleItem(id string) bool {
	if id == "" {
		return false
	}
	return b.selection.Toggle(id)
}

// SelectAllItems selects every item in the catalog
func (b *Board) SelectAllItems() {
	b.selection.SelectAll(b.store.IDs())
}

// ClearAllItems empties the selection
func (b *Board) ClearAllItems() {
	b.selection.ClearAll()
}

// Items returns the full catalog in order
func (b *Board) Items() []domain.FocusItem {
	return b.store.GetAllItems()
}

// Item looks up one catalog entry by identifier
func (b *Board) Item(id string) *domain.FocusItem {
	return b.store.GetItem(id)
}
