// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// File permissions
const (
	// DirPermission is the permission for created directories (rwxr-x---)
	DirPermission = 0750
	// FilePermission is the permission for written files (rw-------)
	FilePermission = 0600
)

// renameAttempts bounds the retries of the final rename.
const renameAttempts = 5

// Metadata is embedded in persisted records to track when and by which format
// version they were written.
type Metadata struct {
	SavedAt time.Time `json:"savedAt"`
	Version string    `json:"version,omitempty"`
}

// Matches reports whether m was written by version. An empty version matches
// anything.
func (m Metadata) Matches(version string) bool {
	return version == "" || m.Version == version
}

// AtomicWriteJSON writes data as indented JSON to path atomically.
func AtomicWriteJSON(path string, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// The temp file lives next to the target so the rename never crosses
	// filesystems, and its random suffix keeps concurrent writers apart.
	tmpFile, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = tmpFile.Close() }()

	if _, err := tmpFile.Write(jsonData); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, FilePermission); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	var renameErr error
	for attempt := 0; attempt < renameAttempts; attempt++ {
		if renameErr = os.Rename(tmpPath, path); renameErr == nil {
			return nil
		}
		if attempt < renameAttempts-1 {
			time.Sleep(time.Duration(20*(attempt+1)) * time.Millisecond)
		}
	}
	_ = os.Remove(tmpPath)
	return fmt.Errorf("failed to rename temp file: %w", renameErr)
}

// ReadJSON decodes the JSON file at path into target. It returns false with
// a nil error when the file does not exist.
func ReadJSON(path string, target any) (bool, error) {
	// #nosec G304 -- callers build path from a sanitized key
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read file: %w", err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return true, nil
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DirPermission); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// RemoveFile deletes path. It returns false with a nil error when the file
// did not exist.
func RemoveFile(path string) (bool, error) {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to remove file: %w", err)
	}
	return true, nil
}
