package db

import (
	"context"
	"sync"

	"scholarledger/internal/ledger"
)

// MemoryDB is a process-local backend; its contents vanish on exit.
type MemoryDB struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{data: map[string][]byte{}}
}

func (m *MemoryDB) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, ledger.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryDB) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)
	return nil
}
