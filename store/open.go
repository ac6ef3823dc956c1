package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Options selects and configures a backend for Open.
type Options struct {
	// Backend is one of the Backend names. Empty means BackendMemory.
	Backend string
	// DSN is the Redis address or URL, or the Postgres connection string.
	DSN string
	// Dir is the directory of the file backend. Empty means DefaultDir().
	Dir string
	// DisableBreaker turns off the circuit breaker around remote backends.
	DisableBreaker bool
}

// DefaultDir returns the directory used by the file backend when none is
// configured.
func DefaultDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "exturl", "urls")
	}
	return filepath.Join(os.TempDir(), "exturl", "urls")
}

// Open returns an instrumented Store for opts. Redis and Postgres backends are
// guarded by a circuit breaker unless opts.DisableBreaker is set.
func Open(ctx context.Context, opts Options) (Store, error) {
	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	if backend == "" {
		backend = BackendMemory
	}

	var (
		s      Store
		remote bool
		err    error
	)
	switch backend {
	case BackendMemory:
		s = NewMemory()
	case BackendFile:
		dir := opts.Dir
		if dir == "" {
			dir = DefaultDir()
		}
		s = NewFile(dir)
	case BackendRedis:
		s, err = NewRedis(ctx, opts.DSN)
		remote = true
	case BackendPostgres:
		s, err = NewPostgres(ctx, opts.DSN)
		remote = true
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownBackend, opts.Backend, strings.Join(Backends(), ", "))
	}
	if err != nil {
		return nil, err
	}

	if remote && !opts.DisableBreaker {
		s = Breaker(s, backend)
	}
	return Instrument(s, backend), nil
}
