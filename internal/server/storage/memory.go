package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/quartz"

	"github.com/cardtable/hearts/internal/game"
)

// MemoryStore keeps sessions in process memory. Snapshots are stored as
// JSON so the memory and Redis backends behave identically. Expired
// entries are dropped lazily on access.
type MemoryStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	clock quartz.Clock
	items map[string]memoryItem
}

type memoryItem struct {
	data    []byte
	expires time.Time
}

// NewMemoryStore creates a memory-backed store. A zero ttl means
// entries never expire.
func NewMemoryStore(ttl time.Duration, clock quartz.Clock) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		clock: clock,
		items: make(map[string]memoryItem),
	}
}

func (s *MemoryStore) Save(ctx context.Context, id string, snap *game.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	item := memoryItem{data: data}
	if s.ttl > 0 {
		item.expires = s.clock.Now().Add(s.ttl)
	}
	s.items[id] = item
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, id string) (*game.Snapshot, error) {
	s.mu.Lock()
	item, ok := s.items[id]
	if ok && !item.expires.IsZero() && s.clock.Now().After(item.expires) {
		delete(s.items, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}

	var snap game.Snapshot
	if err := json.Unmarshal(item.data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
