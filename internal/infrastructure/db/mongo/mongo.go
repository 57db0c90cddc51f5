package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeout = 10 * time.Second
	appName        = "hustlehub-api"
)

// Config selects the database holding the audit trail.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Store is an open connection to the audit database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects and pings the primary. Timeout bounds server selection and
// the ping; it defaults to 10s.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// Audit returns the audit repository on this store.
func (s *Store) Audit() *AuditRepository {
	return NewAuditRepository(s.db)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
