package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds all Prometheus metrics for the analytics service
type Metrics struct {
	Analyses         *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	PlatformRequests *prometheus.CounterVec
	Exports          *prometheus.CounterVec
}
