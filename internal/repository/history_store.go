package repository

import (
	"sync"

	"github.com/velora/content-studio/internal/model"
)

// historyLimit caps how many generated records are retained.  Older entries
// are dropped first.
const historyLimit = 50

// HistoryStore keeps the most recent generated content in memory, oldest
// first.  Like the user store it lives only for the lifetime of the process.
type HistoryStore struct {
	mu    sync.RWMutex
	items []model.ContentRecord
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Add appends a record, evicting the oldest entry once the cap is reached.
func (s *HistoryStore) Add(rec model.ContentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, rec)
	if len(s.items) > historyLimit {
		s.items = s.items[1:]
	}
}

// List returns a copy of the retained records, oldest first.
func (s *HistoryStore) List() []model.ContentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ContentRecord, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the record with the given id or ErrNotFound.
func (s *HistoryStore) Get(id string) (model.ContentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.items {
		if rec.ID == id {
			return rec, nil
		}
	}
	return model.ContentRecord{}, ErrNotFound
}
