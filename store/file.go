package store

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/jongio/exturl/fileutil"
	"github.com/jongio/exturl/security"
)

// FileFormatVersion is written into every file envelope. Envelopes carrying
// another version are treated as missing.
const FileFormatVersion = "1"

// fileEnvelope is the on-disk format of one stored URL.
type fileEnvelope struct {
	Metadata fileutil.Metadata `json:"_meta"`
	Key      string            `json:"key"`
	URL      string            `json:"url"`
}

var keySanitizer = regexp.MustCompile(`[^a-zA-Z0-9_\-.]`)

// File stores one JSON file per key in a directory.
type File struct {
	dir     string
	version string
	mu      sync.RWMutex
}

// NewFile returns a File store rooted at dir. The directory is created on the
// first Save.
func NewFile(dir string) *File {
	return &File{dir: dir, version: FileFormatVersion}
}

// Dir returns the store directory.
func (f *File) Dir() string { return f.dir }

// Save writes url under key atomically.
func (f *File) Save(ctx context.Context, key, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := security.ValidatePath(f.dir); err != nil {
		return fmt.Errorf("invalid store directory: %w", err)
	}
	if err := fileutil.EnsureDir(f.dir); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	env := fileEnvelope{
		Metadata: fileutil.Metadata{SavedAt: time.Now().UTC(), Version: f.version},
		Key:      key,
		URL:      url,
	}
	if err := fileutil.AtomicWriteJSON(f.keyPath(key), env); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

// Load reads the value stored under key.
func (f *File) Load(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var env fileEnvelope
	found, err := fileutil.ReadJSON(f.keyPath(key), &env)
	if err != nil {
		return "", fmt.Errorf("failed to load %q: %w", key, err)
	}
	// Sanitizing can map distinct keys onto one file, so the stored key must
	// match as well.
	if !found || env.Key != key || !env.Metadata.Matches(f.version) {
		return "", ErrNotFound
	}
	return env.URL, nil
}

// Delete removes the file of key.
func (f *File) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	removed, err := fileutil.RemoveFile(f.keyPath(key))
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

// Close is a no-op.
func (f *File) Close() error { return nil }

// sanitizeKey replaces characters that are unsafe in file names.
func sanitizeKey(key string) string {
	return keySanitizer.ReplaceAllString(key, "_")
}

// keyPath returns the file path for a key.
func (f *File) keyPath(key string) string {
	return filepath.Join(f.dir, sanitizeKey(key)+".json")
}
