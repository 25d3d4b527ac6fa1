package store

import (
	"context"
	"sort"
	"sync"

	"github.com/koreksi-id/koreksi/internal/grading"
)

type memoryStore struct {
	mu      sync.RWMutex
	results map[string]grading.Result
}

// NewInMemoryStore returns a Store suitable for tests and offline demos.
func NewInMemoryStore() Store {
	return &memoryStore{results: map[string]grading.Result{}}
}

func (m *memoryStore) SaveResult(_ context.Context, r grading.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[r.ID] = r
	return nil
}

func (m *memoryStore) GetResult(_ context.Context, id string) (grading.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.results[id]
	if !ok {
		return grading.Result{}, ErrNotFound
	}
	return r, nil
}

func (m *memoryStore) ListResults(_ context.Context, class string) ([]grading.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]grading.Result, 0, len(m.results))
	for _, r := range m.results {
		if classMatches(class, r.Class) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID < out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}
