package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// セッションのカートをredisにJSONで保存する
type CartRedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// DI
func NewCartRedisStore(client *redis.Client, ttl time.Duration) *CartRedisStore {
	return &CartRedisStore{
		client: client,
		prefix: cartKeyPrefix,
		ttl:    ttl,
	}
}

// REDIS_URL からクライアントを作る
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	return redis.NewClient(opt), nil
}

func (s *CartRedisStore) Load(ctx context.Context, sessionID string) (model.Cart, error) {
	data, err := s.client.Get(ctx, s.prefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.NewCart(), nil
	}
	if err != nil {
		return model.Cart{}, fmt.Errorf("cart get: %w", err)
	}

	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return model.Cart{}, fmt.Errorf("cart unmarshal: %w", err)
	}
	return cart, nil
}

// 保存のたびにTTLを延ばす
func (s *CartRedisStore) Save(ctx context.Context, sessionID string, cart model.Cart) error {
	if cart.IsEmpty() {
		return s.Delete(ctx, sessionID)
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("cart marshal: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("cart set: %w", err)
	}
	return nil
}

func (s *CartRedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.prefix+sessionID).Err(); err != nil {
		return fmt.Errorf("cart delete: %w", err)
	}
	return nil
}

func (s *CartRedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
