package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionRevocationList remembers logged-out token ids until the tokens
// would have expired anyway.
// Key format: revoked:<token_id>
type SessionRevocationList struct {
	client *redis.Client
	now    func() time.Time
}

func NewSessionRevocationList(client *redis.Client) *SessionRevocationList {
	return &SessionRevocationList{client: client, now: time.Now}
}

// Revoke marks tokenID as revoked until the given instant. Tokens that have
// already expired are ignored.
func (l *SessionRevocationList) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := remaining(until, l.now())
	if ttl <= 0 {
		return nil
	}
	if err := l.client.Set(ctx, revokedKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (l *SessionRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

// remaining rounds up to the next second so a token is never accepted after
// its key expires.
func remaining(until, now time.Time) time.Duration {
	d := until.Sub(now)
	if d <= 0 {
		return 0
	}
	return d.Truncate(time.Second) + time.Second
}

func revokedKey(tokenID string) string {
	return "revoked:" + tokenID
}
