package bootstrap

import (
	"solar-dispatch/internal/infra/metrics"
	"solar-dispatch/internal/pkg/config"
	"solar-dispatch/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func(cfg config.Config) (*metrics.PromMetrics, shared.Metrics, error) {
			return newMetrics(cfg.Metrics, prometheus.DefaultRegisterer)
		},
	),
)

// newMetrics registers nothing when metrics are disabled; the use cases then
// count into NopMetrics and the router skips /metrics.
func newMetrics(cfg config.MetricsConfig, reg prometheus.Registerer) (*metrics.PromMetrics, shared.Metrics, error) {
	if !cfg.Enabled {
		return nil, shared.NopMetrics{}, nil
	}
	m, err := metrics.NewPromMetrics(reg)
	if err != nil {
		return nil, nil, err
	}
	return m, m, nil
}
