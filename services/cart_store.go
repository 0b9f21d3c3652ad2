package services

import (
	"context"
	"sync"
)

// CartStore holds one cart per user, created lazily on first access.
// Update runs fn with the user's cart under that user's lock, so
// concurrent events for the same user serialize instead of
// interleaving. There is no cross-user locking and no eviction.
type CartStore interface {
	Update(ctx context.Context, userID string, fn func(*Cart) error) error
	Snapshot(ctx context.Context, userID string) (Cart, error)
}

// MemoryCartStore keeps carts for the process lifetime. This matches
// the single-process deployment; swap in PGCartStore to survive
// restarts.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]*cartEntry
}

type cartEntry struct {
	mu   sync.Mutex
	cart Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]*cartEntry)}
}

func (s *MemoryCartStore) entry(userID string) *cartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.carts[userID]
	if !ok {
		e = &cartEntry{}
		s.carts[userID] = e
	}
	return e
}

func (s *MemoryCartStore) Update(ctx context.Context, userID string, fn func(*Cart) error) error {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(&e.cart)
}

func (s *MemoryCartStore) Snapshot(ctx context.Context, userID string) (Cart, error) {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.Clone(), nil
}
