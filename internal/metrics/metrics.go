// Package metrics exposes Prometheus counters for definition resolution and the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SourceNone labels a resolution that produced no definition.
const SourceNone = "none"

var (
	resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glossary_resolutions_total",
			Help: "Total number of definition resolutions by language and answering source",
		},
		[]string{"language", "source"},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glossary_cache_lookups_total",
			Help: "Total number of definition cache lookups by outcome",
		},
		[]string{"state"},
	)

	tierDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "glossary_tier_duration_seconds",
			Help:    "Time spent in each resolution tier",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"tier"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glossary_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "glossary_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)
)

// RecordResolution counts a finished resolution. source is a definition source,
// "cache", or SourceNone.
func RecordResolution(language, source string) {
	resolutionsTotal.WithLabelValues(language, source).Inc()
}

func RecordCacheLookup(state string) {
	cacheLookupsTotal.WithLabelValues(state).Inc()
}

func ObserveTier(tier string, duration time.Duration) {
	tierDuration.WithLabelValues(tier).Observe(duration.Seconds())
}

// Middleware records request counts and latency per route pattern.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}
