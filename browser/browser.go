// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pkgbrowser "github.com/pkg/browser"

	"github.com/jongio/exturl/logutil"
	"github.com/jongio/exturl/urlutil"
)

// DefaultTimeout bounds a launch when LaunchOptions.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// ErrUnsafeURL is returned for URLs that are not absolute http(s) URLs.
var ErrUnsafeURL = errors.New("refusing to open url")

// Target represents the browser target for launching URLs.
type Target string

const (
	// TargetDefault uses the system default browser
	TargetDefault Target = "default"
	// TargetSystem uses the system default browser (alias for TargetDefault)
	TargetSystem Target = "system"
	// TargetNone disables browser launching
	TargetNone Target = "none"
)

// openURL is replaced in tests.
var openURL = pkgbrowser.OpenURL

// ValidTargets returns all valid browser target values.
func ValidTargets() []Target {
	return []Target{TargetDefault, TargetSystem, TargetNone}
}

// IsValid checks if a target string is valid.
func IsValid(target string) bool {
	for _, valid := range ValidTargets() {
		if Target(target) == valid {
			return true
		}
	}
	return false
}

// ResolveTarget maps TargetDefault onto TargetSystem and keeps TargetNone.
func ResolveTarget(target Target) Target {
	if target == TargetNone {
		return TargetNone
	}
	return TargetSystem
}

// FormatValidTargets returns a comma-separated list of valid targets.
func FormatValidTargets() string {
	targets := ValidTargets()
	strs := make([]string, len(targets))
	for i, t := range targets {
		strs[i] = string(t)
	}
	return strings.Join(strs, ", ")
}

// LaunchOptions contains options for launching a browser.
type LaunchOptions struct {
	// URL to open
	URL string
	// Target browser to use
	Target Target
	// Timeout for the launch (default DefaultTimeout)
	Timeout time.Duration
}

// CheckURL reports whether rawURL may be handed to a browser.
func CheckURL(rawURL string) error {
	parts, err := urlutil.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsafeURL, err)
	}
	scheme := strings.ToLower(parts[urlutil.Scheme])
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", ErrUnsafeURL)
	}
	if parts[urlutil.Host] == "" {
		return fmt.Errorf("%w: missing host", ErrUnsafeURL)
	}
	return nil
}

// Launch opens opts.URL and waits until the launcher returns or the timeout
// expires.
func Launch(ctx context.Context, opts LaunchOptions) error {
	if err := CheckURL(opts.URL); err != nil {
		return err
	}
	if ResolveTarget(opts.Target) == TargetNone {
		logutil.Debug("browser launch disabled", "url", opts.URL)
		return nil
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	open := openURL
	done := make(chan error, 1)
	go func() { done <- open(opts.URL) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}
		logutil.Debug("opened browser", "url", opts.URL)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to open browser: %w", ctx.Err())
	}
}
