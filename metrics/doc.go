// Package metrics exposes Prometheus instrumentation for URL normalization,
// validation and storage.
//
// Counters are registered with the default registry on import. Use NewServer
// to serve them:
//
//	srv := metrics.NewServer(9090)
//	go srv.ListenAndServe()
//
// Exported series:
//
//	exturl_normalize_total{outcome}                       canonical | empty
//	exturl_validate_total{result}                         valid | invalid
//	exturl_store_operations_total{backend,op,status}      ok | not_found | error
//	exturl_store_operation_duration_seconds{backend,op}
//	exturl_circuit_breaker_state{store}                   0 closed, 1 half-open, 2 open
package metrics
