package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"avion/internal/domain/entity"
	"avion/internal/domain/repository"
	"avion/pkg/errors"
	"avion/pkg/logger"
)

// redisCartRepository keeps each user's cart as one JSON blob under
// cart:user:{uid}, with a TTL so abandoned carts age out.
type redisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartRepository(client *redis.Client, ttl time.Duration) repository.CartRepository {
	return &redisCartRepository{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:user:%s", userID)
}

func (r *redisCartRepository) GetCart(ctx context.Context, userID string) (*entity.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to read cart", err)
	}

	var cart entity.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		// A corrupt blob is unrecoverable; treat it as an empty cart and
		// let the next write replace it
		logger.Warn("Discarding malformed cart blob for user %s: %v", userID, err)
		return nil, nil
	}

	return &cart, nil
}

func (r *redisCartRepository) SaveCart(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Internal("Failed to encode cart", err)
	}

	if err := r.client.Set(ctx, cartKey(cart.UserID), data, r.ttl).Err(); err != nil {
		return errors.Internal("Failed to save cart", err)
	}

	return nil
}

func (r *redisCartRepository) DeleteCart(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return errors.Internal("Failed to clear cart", err)
	}
	return nil
}
