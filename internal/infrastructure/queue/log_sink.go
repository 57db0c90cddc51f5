package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// LogSink is the audit repository used when no Mongo is configured: every
// event becomes one Info line.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Insert(_ context.Context, e *domain.AuditEvent) error {
	s.log.Info().
		Str("action", string(e.Action)).
		Int64("actor_id", e.ActorID).
		Str("target_type", e.TargetType).
		Int64("target_id", e.TargetID).
		Str("detail", e.Detail).
		Time("at", e.At).
		Msg("audit")
	return nil
}
