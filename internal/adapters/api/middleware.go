package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"weathersvc.app/internal/ports"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	maxRequestIDLen = 128
)

// requestID propagates the caller's X-Request-ID or assigns a new UUID
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []ports.Field{
			ports.F("request_id", c.GetString(requestIDKey)),
			ports.F("method", c.Request.Method),
			ports.F("path", c.FullPath()),
			ports.F("status", c.Writer.Status()),
			ports.F("duration_ms", time.Since(start).Milliseconds()),
		}
		if c.Writer.Status() >= 500 {
			logger.Warn("HTTP request failed", fields...)
			return
		}
		logger.Debug("HTTP request served", fields...)
	}
}
