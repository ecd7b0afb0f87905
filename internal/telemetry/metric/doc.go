// Package metric exports capability detection results as Prometheus metrics.
//
//   - collector.go: a prometheus.Collector over a cpucaps.Snapshot
//   - prometheus.go: registry, /metrics handler and text exposition
//
// Exported series:
//
//	cpucaps_capability{capability="neon",source="effective"} 1
//	cpucaps_info{strategy="static-plus-dynamic",goos="linux",goarch="arm",cipher="chacha20-poly1305"} 1
package metric
