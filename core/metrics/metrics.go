package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels for the diff counter.
const (
	ResultEqual     = "equal"
	ResultDifferent = "different"
	ResultError     = "error"
)

// Metrics holds the collectors exported by the service.
type Metrics struct {
	registry *prometheus.Registry
	diffs    *prometheus.CounterVec
	duration prometheus.Histogram
}

// New creates the collectors on a private registry along with the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		diffs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "msforge",
			Name:      "diff_total",
			Help:      "Document comparisons by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "msforge",
			Name:      "diff_duration_seconds",
			Help:      "Time spent comparing documents.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	m.registry.MustRegister(
		m.diffs,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveDiff records one comparison. A nil receiver is a no-op.
func (m *Metrics) ObserveDiff(result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.diffs.WithLabelValues(result).Inc()
	if result != ResultError {
		m.duration.Observe(elapsed.Seconds())
	}
}

// Registry exposes the registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
