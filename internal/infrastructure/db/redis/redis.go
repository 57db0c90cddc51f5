package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTimeout = 5 * time.Second
	clientName     = "hustlehub-api"
)

// Config selects the Redis instance holding revoked sessions.
type Config struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

// Dial connects, pings and returns a revocation list that owns the client.
// Timeout applies to dialing and to every command.
func Dial(ctx context.Context, cfg Config) (*SessionRevocationList, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ClientName:   clientName,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return NewSessionRevocationList(client), nil
}

func (l *SessionRevocationList) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

func (l *SessionRevocationList) Close() error {
	return l.client.Close()
}
