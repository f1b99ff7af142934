package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classapp_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "classapp_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	messagesAppended = promauto.NewCounter(prometheus.CounterOpts{
		Name: "classapp_messages_appended_total",
		Help: "Messages appended to conversations",
	})

	singletonDefaults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classapp_singleton_defaults_created_total",
		Help: "Singleton records created from defaults on first access",
	}, []string{"record"})

	analyticsCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classapp_analytics_cache_total",
		Help: "Analytics bundle cache lookups by result",
	}, []string{"result"})

	analyticsDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "classapp_analytics_compute_duration_seconds",
		Help:    "Duration of analytics bundle computation",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveMessageAppended counts one appended message
func ObserveMessageAppended() {
	messagesAppended.Inc()
}

// ObserveSingletonDefault counts a singleton created from its defaults
// (record: "organization_settings" or "dashboard_kpi")
func ObserveSingletonDefault(record string) {
	singletonDefaults.WithLabelValues(record).Inc()
}

// ObserveAnalyticsCache records a cache lookup ("hit", "miss" or "error")
func ObserveAnalyticsCache(result string) {
	analyticsCache.WithLabelValues(result).Inc()
}

// ObserveAnalyticsCompute records how long computing the bundle took
func ObserveAnalyticsCompute(duration time.Duration) {
	analyticsDuration.Observe(duration.Seconds())
}

// Middleware records every request under its route template so ids in
// paths do not explode the label set. Unmatched routes use "unmatched".
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// Handler exposes the default registry in Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
