// Package audit writes the append-only audit trail off the request path.
//
// Log never blocks and never fails the caller: entries go into a bounded queue
// drained by a single worker that retries each write a fixed number of times
// before dropping it with a log line.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/infrastructure/metrics"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrInvalidUserID = errors.New("audit: user id must be empty or a canonical uuid")

type Config struct {
	QueueSize    int
	MaxAttempts  int
	RetryBackoff time.Duration
	WriteTimeout time.Duration
	Metrics      *metrics.Metrics
}

func (c Config) withDefaults() Config {
	if c.QueueSize <= 0 {
		c.QueueSize = 256
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.RetryBackoff < 0 {
		c.RetryBackoff = 0
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 5 * time.Second
	}
	return c
}

type Logger struct {
	repo interfaces.IAuditLogRepository
	cfg  Config

	mu     sync.RWMutex
	closed bool
	queue  chan entities.AuditLogEntry
	done   chan struct{}

	dropped atomic.Int64
	now     func() time.Time
}

var _ interfaces.IAuditLogger = (*Logger)(nil)

// NewLogger starts the queue worker. Call Close to drain it.
func NewLogger(repo interfaces.IAuditLogRepository, cfg Config) *Logger {
	cfg = cfg.withDefaults()
	l := &Logger{
		repo:  repo,
		cfg:   cfg,
		queue: make(chan entities.AuditLogEntry, cfg.QueueSize),
		done:  make(chan struct{}),
		now:   time.Now,
	}
	go l.run()
	return l
}

// ValidateUserID accepts "" (system action) or a canonical 36-char uuid of
// version 1 to 5 with the RFC 4122 variant.
func ValidateUserID(userID string) error {
	if userID == "" {
		return nil
	}
	if len(userID) != 36 {
		return ErrInvalidUserID
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return ErrInvalidUserID
	}
	if v := id.Version(); v < 1 || v > 5 || id.Variant() != uuid.RFC4122 {
		return ErrInvalidUserID
	}
	return nil
}

func (l *Logger) Log(userID string, action string, details any) {
	if err := ValidateUserID(userID); err != nil {
		log.Warn().Str("user_id", userID).Str("action", action).Msg("[audit][queue] invalid user id, entry skipped")
		l.cfg.Metrics.AuditDropped(metrics.AuditDropInvalid)
		return
	}

	var raw json.RawMessage
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			log.Warn().Err(err).Str("action", action).Msg("[audit][queue] details not serializable")
		} else {
			raw = b
		}
	}
	entry := entities.AuditLogEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Details:   raw,
		CreatedAt: l.now().UTC(),
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		l.drop(entry, metrics.AuditDropClosed)
		return
	}
	select {
	case l.queue <- entry:
		l.cfg.Metrics.AuditEnqueued(len(l.queue))
	default:
		l.drop(entry, metrics.AuditDropQueueFull)
	}
}

// Dropped reports how many entries were discarded since start.
func (l *Logger) Dropped() int64 { return l.dropped.Load() }

// Close stops accepting entries and waits for the queue to drain or ctx to end.
func (l *Logger) Close(ctx context.Context) error {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.queue)
	}
	l.mu.Unlock()

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		log.Warn().Int("pending", len(l.queue)).Msg("[audit][queue] close timed out")
		return ctx.Err()
	}
}

func (l *Logger) run() {
	defer close(l.done)
	for entry := range l.queue {
		l.write(entry)
	}
}

func (l *Logger) write(entry entities.AuditLogEntry) {
	var err error
	for attempt := 1; attempt <= l.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			l.cfg.Metrics.AuditRetry()
			time.Sleep(l.cfg.RetryBackoff)
		}
		ctx, cancel := context.WithTimeout(context.Background(), l.cfg.WriteTimeout)
		err = l.repo.Append(ctx, entry)
		cancel()
		if err == nil {
			l.cfg.Metrics.AuditWritten(len(l.queue))
			return
		}
		log.Warn().Err(err).Str("action", entry.Action).Int("attempt", attempt).Msg("[audit][queue] write failed")
	}
	log.Error().Err(err).Str("entry_id", entry.ID).Str("action", entry.Action).Msg("[audit][queue] retries exhausted, entry dropped")
	l.drop(entry, metrics.AuditDropExhausted)
}

func (l *Logger) drop(entry entities.AuditLogEntry, reason string) {
	l.dropped.Add(1)
	l.cfg.Metrics.AuditDropped(reason)
	if reason == metrics.AuditDropQueueFull || reason == metrics.AuditDropClosed {
		log.Warn().Str("action", entry.Action).Str("reason", reason).Msg("[audit][queue] entry dropped")
	}
}
