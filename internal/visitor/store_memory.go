package visitor

import (
	"context"
	"sync"
)

// MemoryStore keeps records in process. Used for the "memory" driver and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]VisitorRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]VisitorRecord)}
}

func (s *MemoryStore) Insert(_ context.Context, r *VisitorRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[r.ID]; ok {
		return ErrDuplicateID
	}
	s.records[r.ID] = *r
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (*VisitorRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &r, nil
}

func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *MemoryStore) Close(context.Context) error { return nil }
