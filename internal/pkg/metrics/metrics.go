// Package metrics exposes Prometheus counters for the registration
// lifecycle and the HTTP surface.
package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RegistrationsCreated counts successful camp registrations
	RegistrationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medicamp_registrations_created_total",
		Help: "Number of camp registrations created.",
	})

	// RegistrationsCancelled counts successful registration cancellations
	RegistrationsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medicamp_registrations_cancelled_total",
		Help: "Number of camp registrations cancelled.",
	})

	// PaymentIntentsCreated counts payment intents created with the provider
	PaymentIntentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medicamp_payment_intents_created_total",
		Help: "Number of payment intents created.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medicamp_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
)

// RequestCounter is a gin middleware counting requests per route and status
func RequestCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler returns the /metrics endpoint handler
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
