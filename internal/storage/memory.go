package storage

import (
	"context"
	"sync"
	"time"

	"timetable/internal/table"
)

type memoryItem struct {
	table     *table.Table
	expiresAt time.Time
}

// MemoryStore держит таблицы в памяти процесса с ограниченным временем жизни.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]memoryItem
	now   func() time.Time
}

var (
	_ TableStore = (*MemoryStore)(nil)
	_ Sweeper    = (*MemoryStore)(nil)
)

// NewMemoryStore создаёт хранилище в памяти.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, items: make(map[string]memoryItem), now: time.Now}
}

func (s *MemoryStore) Save(_ context.Context, t *table.Table) (string, error) {
	id := newID()
	s.mu.Lock()
	s.items[id] = memoryItem{table: t.Clone(), expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return id, nil
}

func (s *MemoryStore) Load(_ context.Context, id string) (*table.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !s.now().Before(it.expiresAt) {
		delete(s.items, id)
		return nil, ErrNotFound
	}
	return it.table.Clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// Sweep удаляет устаревшие таблицы и возвращает их количество.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, it := range s.items {
		if !now.Before(it.expiresAt) {
			delete(s.items, id)
			n++
		}
	}
	return n
}
