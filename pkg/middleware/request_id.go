package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader é o cabeçalho HTTP que carrega o ID de correlação
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey é a chave usada no contexto do Gin
	RequestIDKey = "request_id"
)

// RequestID garante que toda requisição tenha um ID de correlação,
// reaproveitando o recebido no cabeçalho quando existir.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID obtém o ID da requisição do contexto do Gin
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
