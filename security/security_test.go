// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"existing dir", dir, nil},
		{"missing file", filepath.Join(dir, "exturl.yaml"), nil},
		{"relative", "exturl.yaml", nil},
		{"empty", "", ErrInvalidPath},
		{"traversal", "../etc/passwd", ErrPathTraversal},
		{"embedded traversal", dir + string(filepath.Separator) + ".." + string(filepath.Separator) + "b", ErrPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePath(%q) error = %v", tt.path, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePath(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}
	dir := t.TempDir()

	private := filepath.Join(dir, "private.yaml")
	if err := os.WriteFile(private, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := ValidateFilePermissions(private); err != nil {
		t.Errorf("ValidateFilePermissions(0600) error = %v", err)
	}

	shared := filepath.Join(dir, "shared.yaml")
	if err := os.WriteFile(shared, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(shared, 0o666); err != nil {
		t.Fatal(err)
	}
	if err := ValidateFilePermissions(shared); !errors.Is(err, ErrInsecureFilePermissions) {
		t.Errorf("ValidateFilePermissions(0666) error = %v, want ErrInsecureFilePermissions", err)
	}

	if err := ValidateFilePermissions(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected stat error for a missing file")
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"uuid", "0b8f6a2e-4b41-4c1e-9a55-1f0f5f0c9e11", false},
		{"prefixed", "page-7:Website", false},
		{"unicode", "sëite", false},
		{"empty", "", true},
		{"newline", "a\nb", true},
		{"nul", "a\x00b", true},
		{"invalid utf8", "a\xffb", true},
		{"too long", strings.Repeat("k", MaxKeyLength+1), true},
		{"max length", strings.Repeat("k", MaxKeyLength), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidKey) {
				t.Errorf("ValidateKey() error = %v, want ErrInvalidKey", err)
			}
		})
	}
}
