package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-cooperativas/internal/adapter/api/dto"
)

// Pinger verifica a disponibilidade de uma dependência
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController responde ao health check da API
type HealthController struct {
	db      Pinger
	version string
}

// NewHealthController cria uma nova instância de HealthController
func NewHealthController(db Pinger, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

// Check verifica a saúde da API
// @Summary Health check
// @Description Verifica se a API e o banco de dados estão disponíveis
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	if c.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := c.db.Ping(pingCtx); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Version: c.version})
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Version: c.version})
}
