package store

import (
	"context"
	"errors"
	"time"

	"github.com/jongio/exturl/logutil"
	"github.com/jongio/exturl/metrics"
)

// Instrumented records metrics and debug logs for every call to a Store.
type Instrumented struct {
	inner   Store
	backend string
	log     *logutil.ComponentLogger
}

// Instrument wraps inner. backend labels the recorded metrics.
func Instrument(inner Store, backend string) *Instrumented {
	return &Instrumented{
		inner:   inner,
		backend: backend,
		log:     logutil.NewLogger("store").WithFields("backend", backend),
	}
}

// Unwrap returns the wrapped store.
func (s *Instrumented) Unwrap() Store { return s.inner }

// Save saves url under key.
func (s *Instrumented) Save(ctx context.Context, key, url string) error {
	start := time.Now()
	err := s.inner.Save(ctx, key, url)
	s.record("save", key, start, err)
	return err
}

// Load loads the value of key.
func (s *Instrumented) Load(ctx context.Context, key string) (string, error) {
	start := time.Now()
	url, err := s.inner.Load(ctx, key)
	s.record("load", key, start, err)
	return url, err
}

// Delete deletes key.
func (s *Instrumented) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.inner.Delete(ctx, key)
	s.record("delete", key, start, err)
	return err
}

// Close closes the wrapped store.
func (s *Instrumented) Close() error {
	return s.inner.Close()
}

func (s *Instrumented) record(op, key string, start time.Time, err error) {
	elapsed := time.Since(start)
	status := statusOf(err)
	metrics.RecordStoreOperation(s.backend, op, status, elapsed)

	log := s.log.WithOperation(op)
	if status == metrics.StatusError {
		log.Warn("store operation failed", "key", key, "error", err)
		return
	}
	log.Debug("store operation", "key", key, "status", status, "elapsed", elapsed)
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return metrics.StatusOK
	case errors.Is(err, ErrNotFound):
		return metrics.StatusNotFound
	default:
		return metrics.StatusError
	}
}
