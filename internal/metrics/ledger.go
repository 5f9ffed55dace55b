package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ConfirmationBuckets cover the simulated confirmation window (100ms to 30s).
var ConfirmationBuckets = []float64{
	0.1, 0.25, 0.5, 1, 2, 2.5, 3, 5, 10, 30,
}

// Ledger records the lifecycle of simulated transactions.
type Ledger struct {
	registry *ComponentRegistry

	submitted     *prometheus.CounterVec
	confirmed     *prometheus.CounterVec
	failed        *prometheus.CounterVec
	waitTimeouts  prometheus.Counter
	persistErrors *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

func NewLedger(namespace string) *Ledger {
	reg := NewComponentRegistry(namespace, "ledger")
	return &Ledger{
		registry: reg,
		submitted: reg.NewCounterVec(prometheus.CounterOpts{
			Name: "transactions_submitted_total",
			Help: "Transactions appended to the ledger",
		}, []string{"type"}),
		confirmed: reg.NewCounterVec(prometheus.CounterOpts{
			Name: "transactions_confirmed_total",
			Help: "Transactions that reached the confirmed state",
		}, []string{"type"}),
		failed: reg.NewCounterVec(prometheus.CounterOpts{
			Name: "transactions_failed_total",
			Help: "Transactions that reached the failed state",
		}, []string{"type"}),
		waitTimeouts: reg.NewCounter(prometheus.CounterOpts{
			Name: "wait_timeouts_total",
			Help: "Confirmation waits that gave up before a terminal state",
		}),
		persistErrors: reg.NewCounterVec(prometheus.CounterOpts{
			Name: "persistence_errors_total",
			Help: "Failed reads or writes against the backing store",
		}, []string{"key"}),
		latency: reg.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "confirmation_latency_seconds",
			Help:    "Time from submission until a terminal state",
			Buckets: ConfirmationBuckets,
		}, []string{"type"}),
	}
}

func (m *Ledger) Submitted(kind string) {
	m.submitted.WithLabelValues(kind).Inc()
}

// Finalized records a terminal transition. latency is measured from the
// transaction timestamp.
func (m *Ledger) Finalized(kind string, confirmed bool, latency time.Duration) {
	if confirmed {
		m.confirmed.WithLabelValues(kind).Inc()
	} else {
		m.failed.WithLabelValues(kind).Inc()
	}
	m.latency.WithLabelValues(kind).Observe(latency.Seconds())
}

func (m *Ledger) WaitTimedOut() {
	m.waitTimeouts.Inc()
}

// PersistError matches the signature of ledger.WithPersistErrorHook.
func (m *Ledger) PersistError(key string, _ error) {
	m.persistErrors.WithLabelValues(key).Inc()
}

// Gauge registers a scrape-time gauge, used for values owned elsewhere such as
// the current block height.
func (m *Ledger) Gauge(name, help string, fn func() float64) {
	m.registry.NewGaugeFunc(prometheus.GaugeOpts{Name: name, Help: help}, fn)
}

func (m *Ledger) Registry() *ComponentRegistry {
	return m.registry
}
