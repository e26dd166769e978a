package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas Prometheus del subsistema de pronósticos. Cada motor reporta
// conteo por resultado y duración del cómputo completo (fetch + proyección).
var (
	forecastRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retailflow_forecast_requests_total",
		Help: "Total de cómputos de pronóstico por motor y resultado.",
	}, []string{"engine", "status"})

	forecastDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "retailflow_forecast_duration_seconds",
		Help:    "Duración del cómputo de pronóstico por motor.",
		Buckets: prometheus.DefBuckets,
	}, []string{"engine"})
)

// observeForecast registra una invocación de motor.
func observeForecast(engine string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	forecastRequests.WithLabelValues(engine, status).Inc()
	forecastDuration.WithLabelValues(engine).Observe(time.Since(start).Seconds())
}
