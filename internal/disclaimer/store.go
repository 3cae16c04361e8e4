package disclaimer

import (
	"context"
	"sync"
	"time"
)

// Store keeps acknowledgements server-side, keyed by visitor id
type Store interface {
	HasSeen(ctx context.Context, visitorID string) (bool, error)
	MarkSeen(ctx context.Context, visitorID string) error
}

// NopStore never remembers anything. The cookie alone carries the flag.
type NopStore struct{}

func (NopStore) HasSeen(context.Context, string) (bool, error) { return false, nil }

func (NopStore) MarkSeen(context.Context, string) error { return nil }

// MemoryStore is an in-process Store, lost on restart
type MemoryStore struct {
	mu   sync.RWMutex
	seen map[string]time.Time
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{seen: make(map[string]time.Time), now: time.Now}
}

func (s *MemoryStore) HasSeen(_ context.Context, visitorID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.seen[visitorID]
	return ok, nil
}

func (s *MemoryStore) MarkSeen(_ context.Context, visitorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[visitorID]; !ok {
		s.seen[visitorID] = s.now()
	}
	return nil
}

// Prune drops acknowledgements recorded before the cutoff
func (s *MemoryStore) Prune(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, at := range s.seen {
		if at.Before(before) {
			delete(s.seen, id)
			n++
		}
	}
	return n, nil
}
