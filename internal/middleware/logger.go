package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one structured line per completed request.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": c.GetString(RequestIDKey),
		}

		if len(c.Errors) > 0 {
			log.WithFields(fields).Error(c.Errors.String())
			return
		}

		if c.Writer.Status() >= 500 {
			log.WithFields(fields).Error("request failed")
		} else {
			log.WithFields(fields).Info("request completed")
		}
	}
}
