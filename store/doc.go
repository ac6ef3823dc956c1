// Package store persists canonical external URLs under string keys.
//
// Four backends implement Store:
//
//   - Memory keeps values in a map and is meant for tests and one-shot CLI use.
//   - File writes one JSON envelope per key into a directory.
//   - Redis stores each value as a plain string key.
//   - Postgres upserts rows into an external_urls table.
//
// Values are stored verbatim. Callers normalize before saving (see
// dbfield.ExternalURL.SaveInto), and a value read back is byte-identical to
// the one written.
//
// Remote backends can be wrapped with Breaker, which stops issuing requests
// after repeated failures, and every backend returned by Open is
// instrumented with Prometheus metrics and debug logging.
//
// Record adapts a Store to the key/value collaborator expected by
// dbfield.ExternalURL.
package store
