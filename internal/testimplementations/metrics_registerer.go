package testimplementations

import "github.com/prometheus/client_golang/prometheus"

// TestMetricsRegisterer accepts every collector without exporting anything.
type TestMetricsRegisterer struct{}

var _ prometheus.Registerer = TestMetricsRegisterer{}

func (tm TestMetricsRegisterer) Register(collector prometheus.Collector) error {
	return nil
}

func (tm TestMetricsRegisterer) MustRegister(collectors ...prometheus.Collector) {}

func (tm TestMetricsRegisterer) Unregister(collector prometheus.Collector) bool {
	return true
}
