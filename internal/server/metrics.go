package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "formbuilder"

// metrics counts schema work and request latency on a private registry.
type metrics struct {
	registry *prometheus.Registry

	generations *prometheus.CounterVec
	validations *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{registry: prometheus.NewRegistry()}

	m.generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "generations_total",
			Help:      "Schema generations by outcome",
		},
		[]string{"endpoint", "status"},
	)
	m.validations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "validations_total",
			Help:      "Validation requests by outcome",
		},
		[]string{"status"},
	)
	m.latency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "route", "status"},
	)

	m.registry.MustRegister(m.generations, m.validations, m.latency)
	return m
}

func (m *metrics) recordGeneration(endpoint string, success bool) {
	m.generations.WithLabelValues(endpoint, outcome(success)).Inc()
}

func (m *metrics) recordValidation(valid bool) {
	status := "valid"
	if !valid {
		status = "invalid"
	}
	m.validations.WithLabelValues(status).Inc()
}

func (m *metrics) recordRequest(method, route string, status int, latency time.Duration) {
	m.latency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(latency.Seconds())
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
