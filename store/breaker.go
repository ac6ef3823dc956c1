package store

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/jongio/exturl/metrics"
)

// ErrUnavailable is returned while the breaker of a store is open.
var ErrUnavailable = errors.New("store unavailable")

// BreakerSettings tunes Breaker.
type BreakerSettings struct {
	// Failures is the number of requests, at least 60% failed, that trips
	// the breaker.
	Failures uint32
	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration
}

// DefaultBreakerSettings returns the settings used by Open.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{Failures: 5, Timeout: 30 * time.Second}
}

// BreakerStore guards a Store with a circuit breaker.
type BreakerStore struct {
	inner   Store
	breaker *gobreaker.CircuitBreaker
}

// Breaker wraps inner with a circuit breaker named name using the default
// settings.
func Breaker(inner Store, name string) *BreakerStore {
	return BreakerWithSettings(inner, name, DefaultBreakerSettings())
}

// BreakerWithSettings wraps inner with a circuit breaker named name.
func BreakerWithSettings(inner Store, name string, s BreakerSettings) *BreakerStore {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    s.Timeout,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= s.Failures && failureRatio >= 0.6
		},
		OnStateChange: func(name string, _ gobreaker.State, to gobreaker.State) {
			metrics.RecordCircuitBreakerState(name, to)
		},
		// A missing key or a canceled caller says nothing about the health
		// of the backend.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNotFound) ||
				errors.Is(err, ErrEmptyKey) ||
				errors.Is(err, ErrInvalidKey) ||
				errors.Is(err, context.Canceled)
		},
	}
	metrics.RecordCircuitBreakerState(name, gobreaker.StateClosed)
	return &BreakerStore{inner: inner, breaker: gobreaker.NewCircuitBreaker(settings)}
}

// State returns the current breaker state.
func (b *BreakerStore) State() gobreaker.State {
	return b.breaker.State()
}

// Save runs inner.Save through the breaker.
func (b *BreakerStore) Save(ctx context.Context, key, url string) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, b.inner.Save(ctx, key, url)
	})
	return b.translate(err)
}

// Load runs inner.Load through the breaker.
func (b *BreakerStore) Load(ctx context.Context, key string) (string, error) {
	out, err := b.breaker.Execute(func() (interface{}, error) {
		return b.inner.Load(ctx, key)
	})
	if err != nil {
		return "", b.translate(err)
	}
	return out.(string), nil
}

// Delete runs inner.Delete through the breaker.
func (b *BreakerStore) Delete(ctx context.Context, key string) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, b.inner.Delete(ctx, key)
	})
	return b.translate(err)
}

// Close closes inner.
func (b *BreakerStore) Close() error {
	return b.inner.Close()
}

func (b *BreakerStore) translate(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Join(ErrUnavailable, err)
	}
	return err
}
