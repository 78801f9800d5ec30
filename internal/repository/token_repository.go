package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisapp "artiste_site/internal/storage/redis"

	"github.com/redis/go-redis/v9"
)

const tokenScanBatch = 100

// RedisTokenRepo хранит выданные refresh-токены; ключ живёт столько же, сколько токен
type RedisTokenRepo struct {
	Client *redisapp.Client
}

func NewRedisTokenRepo(client *redisapp.Client) *RedisTokenRepo {
	return &RedisTokenRepo{Client: client}
}

func (r *RedisTokenRepo) SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error {
	const op = "repository.token_repository.SaveRefreshToken"

	if err := r.Client.Set(ctx, refreshTokenKey(userID, token), "1", exp).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *RedisTokenRepo) GetRefreshToken(ctx context.Context, userID, token string) (bool, error) {
	const op = "repository.token_repository.GetRefreshToken"

	val, err := r.Client.Get(ctx, refreshTokenKey(userID, token)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return val == "1", nil
}

func (r *RedisTokenRepo) DeleteRefreshToken(ctx context.Context, userID, token string) error {
	const op = "repository.token_repository.DeleteRefreshToken"

	if err := r.Client.Del(ctx, refreshTokenKey(userID, token)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteAllUserTokens обходит ключи пользователя через SCAN, не блокируя redis
func (r *RedisTokenRepo) DeleteAllUserTokens(ctx context.Context, userID string) error {
	const op = "repository.token_repository.DeleteAllUserTokens"

	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := r.Client.Scan(ctx, cursor, refreshTokenKey(userID, "*"), tokenScanBatch).Result()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		keys = append(keys, batch...)
		if next == 0 {
			break
		}
		cursor = next
	}

	if len(keys) == 0 {
		return nil
	}
	if err := r.Client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func refreshTokenKey(userID, token string) string {
	return redisapp.Key("refresh", userID, token)
}
