package queue

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickaccess/linkdir/internal/api/metrics"
	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	insertTimeout  = 10 * time.Second
)

// AuditRecorder drains audit entries into the log repository from a fixed
// set of workers. It is the non-propagating sink the audit contract
// demands: Record never blocks past the channel buffer and never surfaces
// an error — a failed insert is logged, counted, and dropped.
type AuditRecorder struct {
	entries chan domain.LogEntry
	repo    ports.LogRepository
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewAuditRecorder creates an AuditRecorder with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditRecorder(repo ports.LogRepository, log zerolog.Logger, numWorkers int) *AuditRecorder {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &AuditRecorder{
		entries: make(chan domain.LogEntry, channelBuffer),
		repo:    repo,
		log:     log,
	}
	r.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go r.runWorker(i)
	}
	return r
}

// Record enqueues an entry. When the buffer is full the entry is dropped
// rather than blocking the request that produced it.
func (r *AuditRecorder) Record(entry domain.LogEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	select {
	case r.entries <- entry:
		metrics.AuditQueueDepth.Set(float64(len(r.entries)))
	default:
		metrics.AuditFailuresTotal.WithLabelValues("queue_full").Inc()
		r.log.Warn().Str("action", string(entry.Action)).Str("username", entry.Username).Msg("audit queue full, entry dropped")
	}
}

// Close stops accepting entries and waits for the workers to drain what is
// already buffered.
func (r *AuditRecorder) Close() {
	close(r.entries)
	r.wg.Wait()
}

func (r *AuditRecorder) runWorker(id int) {
	defer r.wg.Done()
	for entry := range r.entries {
		metrics.AuditQueueDepth.Set(float64(len(r.entries)))

		// Inserts run on their own deadline: the request that produced the
		// entry may already be finished.
		ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
		err := r.repo.Insert(ctx, &entry)
		cancel()

		if err != nil {
			metrics.AuditFailuresTotal.WithLabelValues("insert_failed").Inc()
			r.log.Error().Err(err).
				Str("action", string(entry.Action)).
				Str("username", entry.Username).
				Int("worker_id", id).
				Msg("audit log insert failed")
			continue
		}
		metrics.AuditEntriesTotal.WithLabelValues(string(entry.Action)).Inc()
	}
}
