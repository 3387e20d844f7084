package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/resume-ranker/internal/logger"
)

const (
	// RequestIDHeader carries the request identifier in both directions.
	RequestIDHeader = "X-Request-ID"

	requestIDKey    = "request_id"
	maxRequestIDLen = 128
)

// requestID reuses a sane incoming X-Request-ID or generates a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func accessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logger.StringFields(
			logger.StringField{Key: logger.FieldRequestID, Value: c.GetString(requestIDKey)},
			logger.StringField{Key: "method", Value: c.Request.Method},
			logger.StringField{Key: "path", Value: c.Request.URL.Path},
		)
		fields = append(fields,
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)

		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Error("request", fields...)
			return
		}
		log.Info("request", fields...)
	}
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
