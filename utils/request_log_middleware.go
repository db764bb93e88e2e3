package utils

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const TraceIDKey = "traceId"

// RequestLogMiddleware tags every request with a trace id and logs one
// structured line per request, level picked by status class.
func RequestLogMiddleware(c *gin.Context) {
	start := time.Now()
	traceID := uuid.NewString()
	c.Set(TraceIDKey, traceID)
	c.Header("X-Trace-Id", traceID)

	c.Next()

	status := c.Writer.Status()
	fields := []zap.Field{
		zap.String("traceId", traceID),
		zap.Int("status", status),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.String("ip", c.ClientIP()),
		zap.Duration("latency", time.Since(start)),
	}
	if len(c.Errors) > 0 {
		fields = append(fields, zap.String("errors", c.Errors.String()))
	}
	switch {
	case status >= 500:
		zap.L().Error("request", fields...)
	case status >= 400:
		zap.L().Warn("request", fields...)
	default:
		zap.L().Info("request", fields...)
	}
}
