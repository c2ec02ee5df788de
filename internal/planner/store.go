package planner

import (
	"sync"

	"focusdeck/internal/domain"
)

// ItemStore provides access to the focus item catalog
type ItemStore interface {
	GetItem(id string) *domain.FocusItem
	GetAllItems() []domain.FocusItem
	IDs() []string
	SetItems(items []domain.FocusItem)
}

// MemoryItemStore is an in-memory implementation of ItemStore
type MemoryItemStore struct {
	mu    sync.RWMutex
	order []string
	items map[string]*domain.FocusItem
}

// NewMemoryItemStore creates a new memory-based item store
func NewMemoryItemStore() *MemoryItemStore {
	return &MemoryItemStore{
		items: make(map[string]*domain.FocusItem),
	}
}

func (s *MemoryItemStore) GetItem(id string) *domain.FocusItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[id]
}

// GetAllItems returns the catalog in its configured order
func (s *MemoryItemStore) GetAllItems() []domain.FocusItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.FocusItem, 0, len(s.order))
	for _, id := range s.order {
		if item, ok := s.items[id]; ok {
			result = append(result, *item)
		}
	}
	return result
}

// IDs returns the item identifiers in catalog order
func (s *MemoryItemStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, len(s.order))
	copy(result, s.order)
	return result
}

// SetItems replaces the whole catalog. Duplicate identifiers keep the
// first occurrence.
func (s *MemoryItemStore) SetItems(items []domain.FocusItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = s.order[:0]
	s.items = make(map[string]*domain.FocusItem, len(items))
	for i := range items {
		item := items[i]
		if _, exists := s.items[item.ID]; exists {
			continue
		}
		s.items[item.ID] = &item
		s.order = append(s.order, item.ID)
	}
}
