package main

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meal_planner_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "meal_planner_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meal_planner_calculations_total",
		Help: "Nutrition calculations by kind (calculate, profile, recommendation)",
	}, []string{"type"})

	mealSlotCurrent = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "meal_planner_meal_slot_current",
		Help: "1 for the meal slot the meal clock last reported, 0 otherwise",
	}, []string{"slot", "status"})
)

// metricsMiddleware records request count and latency. Unmatched routes are
// grouped under "unmatched" to keep label cardinality bounded.
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
