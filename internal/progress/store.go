package progress

import (
	"context"
	"encoding/json"
	"sync"
)

// Store loads and saves student progress documents keyed by student ID.
// Load for an unknown student returns a fresh empty document, never an
// error.
type Store interface {
	Load(ctx context.Context, studentID string) (*StudentProgress, error)
	Save(ctx context.Context, studentID string, p *StudentProgress) error
}

// MemoryStore is an in-memory Store for tests and ephemeral runs. It
// round-trips documents through JSON so stored state is isolated from
// caller mutation, matching the durable store's behavior.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: map[string][]byte{}}
}

func (m *MemoryStore) Load(_ context.Context, studentID string) (*StudentProgress, error) {
	m.mu.RLock()
	raw, ok := m.docs[studentID]
	m.mu.RUnlock()

	if !ok {
		return New(), nil
	}

	var p StudentProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *MemoryStore) Save(_ context.Context, studentID string, p *StudentProgress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.docs[studentID] = raw
	m.mu.Unlock()
	return nil
}
