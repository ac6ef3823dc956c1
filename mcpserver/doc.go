// Package mcpserver exposes URL normalization, validation and inspection as
// Model Context Protocol tools over stdio.
//
// Tools:
//
//   - normalize_url: {"url"} returns {"input", "url"}
//   - validate_url: {"url", "pattern"?} returns {"url", "valid", "message"?}
//   - inspect_url: {"url"} normalizes, then returns every accessor view
//
// Each tool has its own token bucket; calls beyond the limit get a tool
// error rather than a protocol error.
package mcpserver
