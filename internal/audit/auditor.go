package audit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yukikurage/workforce-management-api/internal/metrics"
	"github.com/yukikurage/workforce-management-api/internal/models"
)

const defaultWriteTimeout = 5 * time.Second

// Writer persists log entries.
type Writer interface {
	Create(ctx context.Context, entry *models.LogEntry) error
}

// Auditor persists audit entries. Failures are logged and swallowed,
// they never reach the caller.
type Auditor struct {
	writer  Writer
	logger  zerolog.Logger
	timeout time.Duration
	metrics *metrics.Metrics
	wg      sync.WaitGroup
}

type Option func(*Auditor)

// WithTimeout bounds each asynchronous write.
func WithTimeout(d time.Duration) Option {
	return func(a *Auditor) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithMetrics counts written and failed entries.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Auditor) {
		a.metrics = m
	}
}

// New creates an Auditor writing through writer.
func New(writer Writer, logger zerolog.Logger, opts ...Option) *Auditor {
	a := &Auditor{
		writer:  writer,
		logger:  logger.With().Str("component", "audit").Logger(),
		timeout: defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Write persists entry synchronously.
func (a *Auditor) Write(ctx context.Context, entry Entry) {
	defer func() {
		if r := recover(); r != nil {
			a.fail(fmt.Errorf("panic: %v", r), entry)
		}
	}()

	if err := a.writer.Create(ctx, entry.LogEntry()); err != nil {
		a.fail(err, entry)
		return
	}
	if a.metrics != nil {
		a.metrics.AuditWritten.Inc()
	}
}

// Record persists entry in a detached goroutine and returns immediately.
func (a *Auditor) Record(entry Entry) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		a.Write(ctx, entry)
	}()
}

// Wait blocks until every recorded entry has been handled.
func (a *Auditor) Wait() {
	a.wg.Wait()
}

func (a *Auditor) fail(err error, entry Entry) {
	if a.metrics != nil {
		a.metrics.AuditFailed.Inc()
	}
	a.logger.Error().Err(err).Str("action", entry.Action).Msg("createLog error")
}
