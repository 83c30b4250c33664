package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API и websocket-канал
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Маршруты для управления происшествиями (CRUD)
		emergencies := api.Group("/emergencies")
		{
			emergencies.GET("", h.listEmergencies)
			emergencies.POST("", h.createEmergency)
			emergencies.PUT("/:id", h.updateEmergency)
			emergencies.DELETE("/:id", h.deleteEmergency)
		}

		// Маршруты конвейера триажа звонков
		calls := api.Group("/calls")
		{
			calls.GET("", h.listCallLogs)
			calls.POST("/analyze", h.analyzeCall)
		}

		// Служебные маршруты
		api.GET("/system/health", h.healthCheck)
		api.GET("/system/upstream", h.upstreamCheck)
	}

	// Канал server-push событий для live-дашборда
	router.GET("/ws", h.serveWS)
}
