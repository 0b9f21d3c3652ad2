package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGCartStore persists carts in Postgres, keyed by the platform user
// id. Writes are read-modify-write upserts; the per-user mutual
// exclusion required by CartStore is an in-process lock, which is
// enough for the single-process deployment this targets.
type PGCartStore struct {
	pool  *pgxpool.Pool
	locks sync.Map // map[userID]*sync.Mutex
}

func NewPGCartStore(pool *pgxpool.Pool) *PGCartStore {
	return &PGCartStore{pool: pool}
}

func (s *PGCartStore) lock(userID string) func() {
	v, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *PGCartStore) load(ctx context.Context, userID string) (Cart, error) {
	var linesJSON []byte
	var lastOrderID string
	err := s.pool.QueryRow(ctx, `
		SELECT items, last_order_id FROM carts WHERE user_id = $1`,
		userID,
	).Scan(&linesJSON, &lastOrderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Cart{}, nil
	}
	if err != nil {
		return Cart{}, err
	}

	var cart Cart
	cart.LastOrderID = lastOrderID
	if len(linesJSON) > 0 {
		if err := json.Unmarshal(linesJSON, &cart.Lines); err != nil {
			return Cart{}, fmt.Errorf("unmarshal cart items: %w", err)
		}
	}
	return cart, nil
}

func (s *PGCartStore) save(ctx context.Context, userID string, cart *Cart) error {
	linesJSON, err := json.Marshal(cart.Lines)
	if err != nil {
		return fmt.Errorf("marshal cart items: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO carts (user_id, items, last_order_id, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE SET
			items = $2,
			last_order_id = $3,
			updated_at = now()`,
		userID, linesJSON, cart.LastOrderID,
	)
	return err
}

func (s *PGCartStore) Update(ctx context.Context, userID string, fn func(*Cart) error) error {
	unlock := s.lock(userID)
	defer unlock()

	cart, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if err := fn(&cart); err != nil {
		return err
	}
	return s.save(ctx, userID, &cart)
}

func (s *PGCartStore) Snapshot(ctx context.Context, userID string) (Cart, error) {
	unlock := s.lock(userID)
	defer unlock()
	return s.load(ctx, userID)
}
