package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-cooperativas/internal/adapter/api/controller"
)

// SetupCooperativeRoutes configura as rotas para o módulo de cooperativas.
// Os middlewares recebidos (autenticação, por exemplo) valem para todo o grupo.
func SetupCooperativeRoutes(router *gin.RouterGroup, cooperativeController *controller.CooperativeController, middlewares ...gin.HandlerFunc) {
	cooperativeRouter := router.Group("/cooperatives")
	cooperativeRouter.Use(middlewares...)
	{
		cooperativeRouter.GET("", cooperativeController.List)
		cooperativeRouter.GET("/all", cooperativeController.ListAll)
		cooperativeRouter.GET("/:id", cooperativeController.GetByID)
	}
}

// SetupHealthRoutes configura a rota de health check, sem autenticação
func SetupHealthRoutes(router *gin.RouterGroup, healthController *controller.HealthController) {
	router.GET("/health", healthController.Check)
}
