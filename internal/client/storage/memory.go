package storage

import (
	"context"
	"sync"
)

// MemoryTokenStore keeps the token in process memory only.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (m *MemoryTokenStore) Token(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryTokenStore) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryTokenStore) ClearToken(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
