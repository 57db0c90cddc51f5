package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDocument struct {
	Action     string    `bson:"action"`
	ActorID    int64     `bson:"actor_id"`
	TargetType string    `bson:"target_type"`
	TargetID   int64     `bson:"target_id"`
	Detail     string    `bson:"detail,omitempty"`
	At         time.Time `bson:"at"`
	RecordedAt time.Time `bson:"recorded_at"`
}

func toAuditDocument(e *domain.AuditEvent, recordedAt time.Time) auditDocument {
	at := e.At
	if at.IsZero() {
		at = recordedAt
	}
	return auditDocument{
		Action:     string(e.Action),
		ActorID:    e.ActorID,
		TargetType: e.TargetType,
		TargetID:   e.TargetID,
		Detail:     e.Detail,
		At:         at.UTC(),
		RecordedAt: recordedAt.UTC(),
	}
}

// EnsureIndexes creates the per-actor and per-target lookup indexes.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "actor_id", Value: 1}, {Key: "at", Value: -1}}},
		{Keys: bson.D{{Key: "target_type", Value: 1}, {Key: "target_id", Value: 1}, {Key: "at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create audit indexes: %w", err)
	}
	return nil
}

// Insert persists an audit event to the audit_events collection.
func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	if _, err := r.coll.InsertOne(ctx, toAuditDocument(event, time.Now())); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
