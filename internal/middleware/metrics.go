package middleware

import (
	"fmt"

	"github.com/SscSPs/wallet_ledger/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// HTTPMetrics counts served requests by route template and status class.
func HTTPMetrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.ObserveHTTPRequest(c.Request.Method, route, fmt.Sprintf("%dxx", c.Writer.Status()/100))
	}
}
