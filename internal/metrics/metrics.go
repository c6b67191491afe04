// Package metrics exposes Prometheus collectors for the prediction service.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec
	predictionsTotal           *prometheus.CounterVec
	predictionBatchSize        prometheus.Histogram

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method, route and code.",
			},
			[]string{"method", "route", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2},
			},
			[]string{"method", "route"},
		)

		predictionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictions_total",
				Help: "Total number of prediction requests, labeled by outcome.",
			},
			[]string{"outcome"},
		)

		predictionBatchSize = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "prediction_batch_size",
				Help:    "Histogram of location counts per prediction request.",
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
			},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware returns a gin middleware observing every request.
func Middleware() gin.HandlerFunc {
	Init()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObservePrediction records the outcome of one prediction request and the
// number of locations it carried.
func ObservePrediction(outcome string, locations int) {
	predictionsTotal.WithLabelValues(outcome).Inc()
	if locations > 0 {
		predictionBatchSize.Observe(float64(locations))
	}
}
