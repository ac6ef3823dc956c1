// Package browser opens external URLs in the user's web browser.
//
// Launching is delegated to github.com/pkg/browser. This package adds target
// selection, a launch timeout, and the check that only absolute http and
// https URLs with a host are ever handed to the operating system:
//
//	err := browser.Launch(ctx, browser.LaunchOptions{
//	    URL:    "https://example.com",
//	    Target: browser.TargetDefault,
//	})
//
// TargetNone validates the URL and then does nothing, which lets callers keep
// one code path for headless runs.
package browser
