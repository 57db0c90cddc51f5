package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	insertTimeout  = 5 * time.Second
)

// AuditDispatcher persists audit events off the request path. Events are
// sharded by actor so one actor's trail is written in order.
type AuditDispatcher struct {
	workers []chan domain.AuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger

	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	dropped atomic.Uint64
}

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	return newAuditDispatcher(numWorkers, channelBuffer, repo, log)
}

func newAuditDispatcher(numWorkers, buffer int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, buffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// or after Close has drained their queue.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an event without blocking. When the actor's shard is full
// or the dispatcher is closed the event is dropped and counted.
func (d *AuditDispatcher) Record(_ context.Context, event domain.AuditEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(event, "dispatcher closed")
		return
	}
	select {
	case d.workers[d.shardIndex(event.ActorID)] <- event:
	default:
		d.drop(event, "queue full")
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *AuditDispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// Dropped reports how many events were discarded since start.
func (d *AuditDispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

func (d *AuditDispatcher) drop(event domain.AuditEvent, reason string) {
	d.dropped.Add(1)
	d.log.Warn().
		Str("action", string(event.Action)).
		Int64("actor_id", event.ActorID).
		Str("reason", reason).
		Msg("audit event dropped")
}

// shardIndex maps an actor deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(actorID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(actorID, 10)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			d.write(ctx, id, event)
		}
	}
}

func (d *AuditDispatcher) write(ctx context.Context, worker int, event domain.AuditEvent) {
	insertCtx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	if err := d.repo.Insert(insertCtx, &event); err != nil {
		d.log.Error().Err(err).
			Str("action", string(event.Action)).
			Int64("actor_id", event.ActorID).
			Int("worker_id", worker).
			Msg("audit event write failed")
	}
}
