package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "solar_dispatch"

// PromMetrics records dispatch-core counters and HTTP latency in Prometheus.
type PromMetrics struct {
	codesIssued    *prometheus.CounterVec
	codesValidated *prometheus.CounterVec
	draws          *prometheus.CounterVec
	transitions    *prometheus.CounterVec
	codesCleaned   prometheus.Counter
	httpDuration   *prometheus.HistogramVec
}

// NewPromMetrics registers the collectors on reg, or on the default registerer
// when reg is nil. Collectors that are already registered are reused.
func NewPromMetrics(reg prometheus.Registerer) (*PromMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &PromMetrics{
		codesIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "codes_issued_total",
			Help:      "Verification codes issued, by outcome",
		}, []string{"outcome"}),
		codesValidated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "codes_validated_total",
			Help:      "Verification code checks, by outcome",
		}, []string{"outcome"}),
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draws_total",
			Help:      "Dispatch draws, by outcome",
		}, []string{"outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "material_transitions_total",
			Help:      "Material line transitions, by line, action and outcome",
		}, []string{"line", "action", "outcome"}),
		codesCleaned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "codes_cleaned_up_total",
			Help:      "Expired verification codes deleted by the cleanup job",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	var err error
	if m.codesIssued, err = register(reg, m.codesIssued); err != nil {
		return nil, err
	}
	if m.codesValidated, err = register(reg, m.codesValidated); err != nil {
		return nil, err
	}
	if m.draws, err = register(reg, m.draws); err != nil {
		return nil, err
	}
	if m.transitions, err = register(reg, m.transitions); err != nil {
		return nil, err
	}
	if m.codesCleaned, err = register(reg, m.codesCleaned); err != nil {
		return nil, err
	}
	if m.httpDuration, err = register(reg, m.httpDuration); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *PromMetrics) CodeIssued(outcome string) {
	m.codesIssued.WithLabelValues(outcome).Inc()
}

func (m *PromMetrics) CodeValidated(outcome string) {
	m.codesValidated.WithLabelValues(outcome).Inc()
}

func (m *PromMetrics) DrawCompleted(outcome string) {
	m.draws.WithLabelValues(outcome).Inc()
}

func (m *PromMetrics) MaterialTransition(line, action, outcome string) {
	m.transitions.WithLabelValues(line, action, outcome).Inc()
}

func (m *PromMetrics) CodesCleanedUp(n int64) {
	if n > 0 {
		m.codesCleaned.Add(float64(n))
	}
}

// ObserveHTTP records one request. route is the matched pattern, not the raw path.
func (m *PromMetrics) ObserveHTTP(method, route, status string, d time.Duration) {
	m.httpDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
