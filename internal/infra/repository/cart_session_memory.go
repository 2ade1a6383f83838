package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"storefront/internal/domain/model"
)

// REDIS_URL が無いときのプロセス内ストア。値はJSONで持ち、redis版と同じくコピーを返す。
type CartMemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	carts map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewCartMemoryStore(ttl time.Duration) *CartMemoryStore {
	return &CartMemoryStore{
		ttl:   ttl,
		now:   time.Now,
		carts: make(map[string]memoryEntry),
	}
}

func (s *CartMemoryStore) Load(ctx context.Context, sessionID string) (model.Cart, error) {
	s.mu.Lock()
	e, ok := s.carts[sessionID]
	if ok && s.expired(e) {
		delete(s.carts, sessionID)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return model.NewCart(), nil
	}

	var cart model.Cart
	if err := json.Unmarshal(e.data, &cart); err != nil {
		return model.Cart{}, fmt.Errorf("cart unmarshal: %w", err)
	}
	return cart, nil
}

func (s *CartMemoryStore) Save(ctx context.Context, sessionID string, cart model.Cart) error {
	if cart.IsEmpty() {
		return s.Delete(ctx, sessionID)
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("cart marshal: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *CartMemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

func (s *CartMemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *CartMemoryStore) expired(e memoryEntry) bool {
	return s.ttl > 0 && !s.now().Before(e.expiresAt)
}
