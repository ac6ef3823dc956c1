package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"
)

// Outcome and status label values.
const (
	OutcomeCanonical = "canonical"
	OutcomeEmpty     = "empty"

	ResultValid   = "valid"
	ResultInvalid = "invalid"

	StatusOK       = "ok"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

var (
	normalizeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exturl_normalize_total",
			Help: "Total number of URL normalizations by outcome",
		},
		[]string{"outcome"},
	)

	validateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exturl_validate_total",
			Help: "Total number of URL validations by result",
		},
		[]string{"result"},
	)

	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exturl_store_operations_total",
			Help: "Total number of store operations",
		},
		[]string{"backend", "op", "status"},
	)

	storeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "exturl_store_operation_duration_seconds",
			Help:    "Duration of store operations in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"backend", "op"},
	)

	circuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "exturl_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"store"},
	)
)

// RecordNormalize counts one normalization. An empty result counts as
// OutcomeEmpty.
func RecordNormalize(result string) {
	outcome := OutcomeCanonical
	if result == "" {
		outcome = OutcomeEmpty
	}
	normalizeTotal.WithLabelValues(outcome).Inc()
}

// RecordValidate counts one validation.
func RecordValidate(valid bool) {
	result := ResultValid
	if !valid {
		result = ResultInvalid
	}
	validateTotal.WithLabelValues(result).Inc()
}

// RecordStoreOperation records the status and duration of a store call.
func RecordStoreOperation(backend, op, status string, elapsed time.Duration) {
	storeOperations.With(prometheus.Labels{
		"backend": backend,
		"op":      op,
		"status":  status,
	}).Inc()
	storeDuration.With(prometheus.Labels{
		"backend": backend,
		"op":      op,
	}).Observe(elapsed.Seconds())
}

// RecordCircuitBreakerState records the state of a store circuit breaker.
func RecordCircuitBreakerState(store string, state gobreaker.State) {
	var stateValue float64
	switch state {
	case gobreaker.StateClosed:
		stateValue = 0
	case gobreaker.StateHalfOpen:
		stateValue = 1
	case gobreaker.StateOpen:
		stateValue = 2
	}

	circuitBreakerState.With(prometheus.Labels{
		"store": store,
	}).Set(stateValue)
}

// NewServer creates an HTTP server exposing /metrics and /health.
func NewServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
