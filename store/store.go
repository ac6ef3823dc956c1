package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/jongio/exturl/security"
)

// ErrNotFound is returned by Load and Delete when the key has no value.
var ErrNotFound = errors.New("url not found")

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// ErrEmptyKey is returned when an operation is given an empty key.
var ErrEmptyKey = errors.New("store key must not be empty")

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Backends returns the supported backend names, sorted.
func Backends() []string {
	names := []string{BackendMemory, BackendFile, BackendRedis, BackendPostgres}
	sort.Strings(names)
	return names
}

// Store persists URLs by key. Implementations are safe for concurrent use.
type Store interface {
	Save(ctx context.Context, key, url string) error
	Load(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

// NewKey returns a random key suitable for a new record.
func NewKey() string {
	return uuid.NewString()
}

// ErrInvalidKey is returned for keys that are too long or contain control
// characters.
var ErrInvalidKey = security.ErrInvalidKey

func checkKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return security.ValidateKey(key)
}

// RecordAdapter exposes a Store as a key/value record. Keys are prefixed so
// several records can share one store.
type RecordAdapter struct {
	store  Store
	prefix string
}

// Record returns a RecordAdapter over s. A non-empty prefix is joined to each
// key with a colon.
func Record(s Store, prefix string) *RecordAdapter {
	return &RecordAdapter{store: s, prefix: prefix}
}

// Key returns the store key used for name.
func (r *RecordAdapter) Key(name string) string {
	if r.prefix == "" {
		return name
	}
	return r.prefix + ":" + name
}

// Set saves value under name.
func (r *RecordAdapter) Set(ctx context.Context, name, value string) error {
	return r.store.Save(ctx, r.Key(name), value)
}

// Get loads the value saved under name.
func (r *RecordAdapter) Get(ctx context.Context, name string) (string, error) {
	value, err := r.store.Load(ctx, r.Key(name))
	if err != nil {
		return "", fmt.Errorf("record %q: %w", name, err)
	}
	return value, nil
}
