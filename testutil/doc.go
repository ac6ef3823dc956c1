// Package testutil provides test helpers for exturl commands.
//
//   - CaptureLogs redirects the global logger into a buffer.
//   - ExecuteCommand runs a cobra command and returns what it wrote.
//   - WriteFile writes a fixture file into a test directory.
//
// All helpers call t.Helper() so failures point at the calling test.
package testutil
