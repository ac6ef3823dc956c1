package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jongio/exturl/logutil"
)

// CaptureLogs redirects the global logger into a buffer for the rest of
// the test, at debug level when debug is set. The default stderr logger is
// restored on cleanup.
//
// Example:
//
//	logs := testutil.CaptureLogs(t, true)
//	s.Save(ctx, "k", "https://example.com")
//	assert.Contains(t, logs.String(), "operation=save")
func CaptureLogs(t *testing.T, debug bool) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	logutil.SetupLoggerWithWriter(&buf, debug, false)
	t.Cleanup(func() { logutil.SetupLogger(false, false) })
	return &buf
}

// ExecuteCommand runs cmd with args and returns its stdout and stderr.
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// WriteFile writes content to name inside dir and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
