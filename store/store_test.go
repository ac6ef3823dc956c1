package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behavior every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	key := NewKey()

	_, err := s.Load(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	const canonical = "https://user@example.com:8443/a%20b?q=1&r=%C3%A9#frag"
	require.NoError(t, s.Save(ctx, key, canonical))
	got, err := s.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, canonical, got, "values must round trip verbatim")

	require.NoError(t, s.Save(ctx, key, "https://example.org"))
	got, err = s.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org", got)

	require.NoError(t, s.Save(ctx, key+"-empty", ""))
	got, err = s.Load(ctx, key+"-empty")
	require.NoError(t, err)
	assert.Equal(t, "", got, "an empty value is stored, not missing")
	require.NoError(t, s.Delete(ctx, key+"-empty"))

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Load(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, key), ErrNotFound)

	assert.ErrorIs(t, s.Save(ctx, "", "https://example.com"), ErrEmptyKey)
	assert.ErrorIs(t, s.Save(ctx, "bad\nkey", "https://example.com"), ErrInvalidKey)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	exerciseStore(t, s)
	assert.Equal(t, 0, s.Len())
	assert.NoError(t, s.Close())
}

func TestMemoryStoreCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemory()
	assert.ErrorIs(t, s.Save(ctx, "k", "v"), context.Canceled)
	_, err := s.Load(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Delete(ctx, "k"), context.Canceled)
}

func TestMemoryStoreConcurrent(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := NewKey()
			_ = s.Save(ctx, key, "https://example.com")
			_, _ = s.Load(ctx, key)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}

func TestNewKey(t *testing.T) {
	a, b := NewKey(), NewKey()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestBackends(t *testing.T) {
	assert.Equal(t, []string{"file", "memory", "postgres", "redis"}, Backends())
}

func TestRecordAdapter(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	rec := Record(s, "page-7")

	assert.Equal(t, "page-7:Website", rec.Key("Website"))
	require.NoError(t, rec.Set(ctx, "Website", "https://example.com"))

	got, err := s.Load(ctx, "page-7:Website")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got)

	got, err = rec.Get(ctx, "Website")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got)

	_, err = rec.Get(ctx, "Missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"Missing"`)

	assert.Equal(t, "Website", Record(s, "").Key("Website"))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, "ok", statusOf(nil))
	assert.Equal(t, "not_found", statusOf(ErrNotFound))
	assert.Equal(t, "not_found", statusOf(errNotFoundWrapped()))
	assert.Equal(t, "error", statusOf(errors.New("boom")))
}

func errNotFoundWrapped() error {
	return errors.Join(errors.New("record"), ErrNotFound)
}
