package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_http_requests_total",
			Help: "Total HTTP requests by route and status code",
		},
		[]string{"route", "status"},
	)

	dashboardDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_dashboard_build_seconds",
			Help:    "Time spent filtering and aggregating one dashboard",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)

	filteredTitles = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_dashboard_filtered_titles",
			Help:    "Number of titles left after filtering",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

// instrument counts every request by matched route and status.
func instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func observeDashboard(start time.Time, titles int) {
	dashboardDurationSeconds.Observe(time.Since(start).Seconds())
	filteredTitles.Observe(float64(titles))
}
