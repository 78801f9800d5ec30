package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix отделяет ключи сайта от прочих данных в общей базе redis
const keyPrefix = "artiste"

// Client хранит корзины и refresh-токены
type Client struct {
	*redis.Client
}

func NewClient(addr, password string, db int) *Client {
	return &Client{
		Client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
	}
}

// Key builds "artiste:<kind>:<part>:...".
func Key(kind string, parts ...string) string {
	return keyPrefix + ":" + kind + ":" + strings.Join(parts, ":")
}

func (c *Client) HealthCheck(ctx context.Context) error {
	const op = "storage.redis.HealthCheck"

	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) Stop() error {
	return c.Client.Close()
}
