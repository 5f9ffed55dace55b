package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ComponentRegistry manages metrics for a specific component.
type ComponentRegistry struct {
	namespace string
	subsystem string
	registry  *prometheus.Registry
	factory   promauto.Factory
}

// NewComponentRegistry creates a registry for a component. Each registry owns
// its own prometheus.Registry so several instances can coexist in one process.
func NewComponentRegistry(namespace, subsystem string) *ComponentRegistry {
	reg := prometheus.NewRegistry()
	return &ComponentRegistry{
		namespace: namespace,
		subsystem: subsystem,
		registry:  reg,
		factory:   promauto.With(reg),
	}
}

// NewCounterVec creates a new counter with proper naming.
func (r *ComponentRegistry) NewCounterVec(opts prometheus.CounterOpts, labelNames []string) *prometheus.CounterVec {
	opts.Namespace = r.namespace
	opts.Subsystem = r.subsystem
	return r.factory.NewCounterVec(opts, labelNames)
}

// NewCounter creates a new counter with proper naming.
func (r *ComponentRegistry) NewCounter(opts prometheus.CounterOpts) prometheus.Counter {
	opts.Namespace = r.namespace
	opts.Subsystem = r.subsystem
	return r.factory.NewCounter(opts)
}

// NewGaugeFunc creates a gauge whose value is read from fn at scrape time.
func (r *ComponentRegistry) NewGaugeFunc(opts prometheus.GaugeOpts, fn func() float64) prometheus.GaugeFunc {
	opts.Namespace = r.namespace
	opts.Subsystem = r.subsystem
	return r.factory.NewGaugeFunc(opts, fn)
}

// NewHistogramVec creates a new histogram vector with proper naming.
func (r *ComponentRegistry) NewHistogramVec(opts prometheus.HistogramOpts, labelNames []string,
) *prometheus.HistogramVec {
	opts.Namespace = r.namespace
	opts.Subsystem = r.subsystem
	return r.factory.NewHistogramVec(opts, labelNames)
}

// Handler exposes the registry in the prometheus text format.
func (r *ComponentRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
