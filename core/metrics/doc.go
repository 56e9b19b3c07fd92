// Package metrics exposes Prometheus collectors for the comparison service.
//
// # Collectors
//
//   - msforge_diff_total{result}: comparisons by result (equal, different, error)
//   - msforge_diff_duration_seconds: comparison latency
//
// Go runtime and process collectors are registered on the same private
// registry.
//
// # Usage
//
//	m := metrics.New()
//	app.Get("/metrics", m.Handler())
//	m.ObserveDiff(metrics.ResultDifferent, elapsed)
package metrics
