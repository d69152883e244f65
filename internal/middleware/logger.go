package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sdvn-lab/traffic-backend-go/internal/logger"
)

// Logger middleware logs HTTP requests through the application logger.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		log := logger.GetSugaredLogger()
		log.Infow("request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"errors", c.Errors.String(),
		)
	}
}
