package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-cooperativas/pkg/auth"
	"github.com/hugohenrick/erp-cooperativas/pkg/logger"
)

// RequestLogger registra cada requisição atendida
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", GetRequestID(c),
		}

		// Preenchidos pelo middleware de JWT quando a rota é autenticada
		if user := c.GetString(auth.UserLoginKey); user != "" {
			fields = append(fields, "user", user, "authorities", c.GetStringSlice(auth.AuthoritiesKey))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("requisição com erro", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("requisição rejeitada", fields...)
		default:
			log.Info("requisição atendida", fields...)
		}
	}
}
