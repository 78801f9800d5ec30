package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"artiste_site/internal/domain/models"
	redisapp "artiste_site/internal/storage/redis"

	"github.com/redis/go-redis/v9"
)

const defaultCartTTL = 30 * 24 * time.Hour

// RedisCartRepo хранит корзину одним JSON-значением под ключом artiste:cart:<id>
type RedisCartRepo struct {
	Client *redisapp.Client
	ttl    time.Duration
}

func NewRedisCartRepo(client *redisapp.Client, ttl time.Duration) *RedisCartRepo {
	if ttl <= 0 {
		ttl = defaultCartTTL
	}
	return &RedisCartRepo{Client: client, ttl: ttl}
}

// GetCart returns an empty cart for unknown ids.
func (r *RedisCartRepo) GetCart(ctx context.Context, cartID string) (models.Cart, error) {
	const op = "repository.cart_repository.GetCart"

	raw, err := r.Client.Get(ctx, cartKey(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Cart{ID: cartID, Lines: []models.CartLine{}}, nil
	}
	if err != nil {
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	var cart models.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	cart.ID = cartID
	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}

	return cart, nil
}

func (r *RedisCartRepo) SaveCart(ctx context.Context, cart models.Cart) error {
	const op = "repository.cart_repository.SaveCart"

	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.Client.Set(ctx, cartKey(cart.ID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *RedisCartRepo) DeleteCart(ctx context.Context, cartID string) error {
	const op = "repository.cart_repository.DeleteCart"

	if err := r.Client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func cartKey(cartID string) string {
	return redisapp.Key("cart", cartID)
}
