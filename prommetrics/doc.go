// Package prommetrics implements crcgo.MetricsCollector on top of the
// Prometheus client library. Metrics carry an "algorithm" label so one
// Collector can serve every engine in a process.
package prommetrics
