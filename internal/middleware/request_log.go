package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"joinpay-order-api/internal/logger"
	"joinpay-order-api/internal/utils"
)

// RequestLog 请求审计日志
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Request.WithFields(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         utils.GetRealClientIP(c),
		}).Info("request")
	}
}
