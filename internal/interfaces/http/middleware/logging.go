package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/prometheus"
)

// RequestLogging logs one structured entry per request and feeds the HTTP
// metrics. Client errors log at WARN, server errors at ERROR.
func RequestLogging(log logging.Logger, metrics *prometheus.AppMetrics) gin.HandlerFunc {
	if log == nil {
		log = logging.NewNopLogger()
	}
	log = log.Named("http")

	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		elapsed := time.Since(started)

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		prometheus.RecordHTTPRequest(metrics, c.Request.Method, path, status, elapsed)

		fields := []logging.Field{
			logging.String("request_id", GetRequestID(c)),
			logging.String("method", c.Request.Method),
			logging.String("path", path),
			logging.Int("status", status),
			logging.Duration("elapsed", elapsed),
			logging.String("client_ip", c.ClientIP()),
		}
		switch {
		case status >= 500:
			log.Error("request failed", fields...)
		case status >= 400:
			log.Warn("request rejected", fields...)
		default:
			log.Info("request served", fields...)
		}
	}
}

//Personal.AI order the ending
