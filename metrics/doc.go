// Package metrics exports spanning-forest runs to Prometheus.
//
// A *Prometheus implements mst.Recorder. Register it once per registry and
// share it between goroutines; the underlying collectors are concurrency
// safe.
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheus(reg)
//	edges, err := mst.SpanningEdges(g, mst.WithRecorder(rec))
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// Metrics (namespace "spanning_forest"):
//
//   - runs_total{method,status}: completed calls; status is "ok",
//     "undefined_weight" or "error".
//   - run_duration_seconds{method}: wall time per call.
//   - selected_edges_total{method}: forest edges emitted.
//   - skipped_undefined_total{method}: NaN-weighted edges dropped by policy.
//   - components{method}: trees in the last successful forest.
package metrics
