// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides the structured logger shared by the exturl packages.
//
// It wraps the standard library's slog package with a process-wide logger and
// component-scoped child loggers.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	log := logutil.NewLogger("store").WithOperation("save")
//	log.Debug("saved url", "key", key)
//	log.Error("save failed", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set EXTURL_DEBUG=true environment variable
//
// The minimum level can also be set with EXTURL_LOG_LEVEL (debug, info, warn,
// error).
//
// # Credentials
//
// String and error attributes pass through Redact, so the password of a URL
// such as "https://user:pw@example.com" is written as "xxxxx".
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2026-01-15T10:30:00Z","level":"INFO","msg":"url saved","key":"k1"}
//
// Otherwise, logs use the slog text format:
//
//	time=2026-01-15T10:30:00Z level=INFO msg="url saved" key=k1
package logutil
