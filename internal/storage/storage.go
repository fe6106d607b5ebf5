package storage

import (
	"sync"

	"github.com/lehigh-university-libraries/stackmap/internal/models"
)

// ItemStore is the in-memory item cache the display endpoints read from.
type ItemStore struct {
	items map[string]*models.Item
	mu    sync.RWMutex
}

func New() *ItemStore {
	return &ItemStore{
		items: make(map[string]*models.Item),
	}
}

func (s *ItemStore) Get(itemID string) (*models.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, exists := s.items[itemID]
	return item, exists
}

func (s *ItemStore) Set(itemID string, item *models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[itemID] = item
}

func (s *ItemStore) GetAll() map[string]*models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*models.Item, len(s.items))
	for k, v := range s.items {
		result[k] = v
	}
	return result
}

func (s *ItemStore) Delete(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, itemID)
}

// Len reports how many items are cached.
func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
