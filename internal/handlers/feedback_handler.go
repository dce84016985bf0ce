package handlers

import (
	"net/http"

	"civicfix_backend/internal/middleware"
	"civicfix_backend/internal/models"
	"civicfix_backend/internal/services"
	"civicfix_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	*BaseHandler
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(base *BaseHandler, feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     base,
		feedbackService: feedbackService,
	}
}

func (h *FeedbackHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Стена отзывов читается без токена; с токеном в ответ попадает
	// собственный голос пользователя
	r.GET("/feedback", middleware.OptionalAuthMiddleware(), h.ListPublic)

	feedback := r.Group("/feedback")
	feedback.Use(middleware.AuthMiddleware())
	{
		feedback.POST("", h.Submit)
		feedback.POST("/:feedbackId/vote", h.CastVote)
	}

	admin := r.Group("/admin/feedback")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.ListAll)
		admin.PATCH("/:feedbackId/response", h.Respond)
		admin.DELETE("/:feedbackId", h.Delete)
	}
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitFeedbackRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.feedbackService.Submit(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *FeedbackHandler) ListPublic(c *gin.Context) {
	items, err := h.feedbackService.ListPublic(h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": items})
}

func (h *FeedbackHandler) CastVote(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CastFeedbackVoteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.feedbackService.CastVote(
		c.Param("feedbackId"), userID, models.FeedbackVoteType(req.Type))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *FeedbackHandler) ListAll(c *gin.Context) {
	items, err := h.feedbackService.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": items})
}

func (h *FeedbackHandler) Respond(c *gin.Context) {
	var req dto.AdminRespondRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.feedbackService.Respond(c.Param("feedbackId"), req.Response)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	if err := h.feedbackService.Delete(c.Param("feedbackId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
