// Package shortlist provides the user shortlist stores.
package shortlist

import (
	"context"
	"slices"
	"sync"

	"github.com/niksmo/jubilant/internal/core/port"
)

var _ port.ShortlistStore = (*MemoryStore)(nil)

// A MemoryStore keeps shortlists in process memory.
//
// Mutations hold the write lock for the whole read-modify-write,
// so readers never see a partial toggle.
type MemoryStore struct {
	mu    sync.RWMutex
	lists map[string][]string
}

func NewMemoryStore(seed map[string][]string) *MemoryStore {
	s := &MemoryStore{lists: make(map[string][]string, len(seed))}
	for userID, ids := range seed {
		for _, id := range ids {
			s.add(userID, id)
		}
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.lists[userID]), nil
}

func (s *MemoryStore) Add(_ context.Context, userID, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(userID, productID), nil
}

func (s *MemoryStore) Remove(_ context.Context, userID, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[userID]
	i := slices.Index(list, productID)
	if i < 0 {
		return false, nil
	}
	s.lists[userID] = slices.Delete(list, i, i+1)
	return true, nil
}

func (s *MemoryStore) add(userID, productID string) bool {
	list := s.lists[userID]
	if slices.Contains(list, productID) {
		return false
	}
	s.lists[userID] = append(list, productID)
	return true
}
