package handlers

import (
	"net/http"

	"civicfix_backend/internal/middleware"
	"civicfix_backend/internal/models"
	"civicfix_backend/internal/services"
	"civicfix_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler - статистика, аналитика и метки на карте
type AdminHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
	markerService    services.MarkerService
}

func NewAdminHandler(
	base *BaseHandler,
	analyticsService services.AnalyticsService,
	markerService services.MarkerService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
		markerService:    markerService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Метки видны всем вместе с публичной картой
	r.GET("/markers", h.ListMarkers)

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/stats", h.Stats)
		admin.GET("/analytics/requests", h.RequestAnalytics)
		admin.POST("/markers", h.CreateMarker)
		admin.DELETE("/markers/:markerId", h.DeleteMarker)
	}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.analyticsService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) RequestAnalytics(c *gin.Context) {
	analytics, err := h.analyticsService.RequestAnalytics()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}

func (h *AdminHandler) ListMarkers(c *gin.Context) {
	markers, err := h.markerService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"markers": markers})
}

func (h *AdminHandler) CreateMarker(c *gin.Context) {
	var req dto.CreateMarkerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	marker, err := h.markerService.Create(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, marker)
}

func (h *AdminHandler) DeleteMarker(c *gin.Context) {
	if err := h.markerService.Delete(c.Param("markerId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
