package routes

import (
	"net/http"

	"civicfix_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes подключает все обработчики на /api/v1.
// Каждый хендлер сам навешивает нужные middleware на свои группы.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	h.Auth.RegisterRoutes(api)
	h.Request.RegisterRoutes(api)
	h.Notification.RegisterRoutes(api)
	h.Poll.RegisterRoutes(api)
	h.Feedback.RegisterRoutes(api)
	h.Settings.RegisterRoutes(api)
	h.Admin.RegisterRoutes(api)
}
