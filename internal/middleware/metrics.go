package middleware

import (
	"time"

	"github.com/bekzodm/dayplan/internal/observability"
	"github.com/gin-gonic/gin"
)

// Metrics records per-request Prometheus metrics. The route template
// (not the raw path) is used as the label to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
