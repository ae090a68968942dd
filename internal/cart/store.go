package cart

import (
	"context"
	"encoding/json"
	"time"

	"grosirku-be/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	cartKeyPrefix = "cart:"

	// Carts follow the customer session lifetime.
	cartTTL = 24 * time.Hour
)

// Store persists session carts. Carts live outside the request but
// only for the duration of one session.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, c *Cart) error
	Clear(ctx context.Context, sessionID string) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return &Cart{}, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("cart store: get failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *redisStore) Save(ctx context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, cartKeyPrefix+sessionID, data, cartTTL).Err()
}

func (s *redisStore) Clear(ctx context.Context, sessionID string) error {
	// DEL on a missing key is a no-op, which keeps Clear idempotent.
	return s.client.Del(ctx, cartKeyPrefix+sessionID).Err()
}
