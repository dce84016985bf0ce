package handlers

import (
	"net/http"

	"civicfix_backend/internal/middleware"
	"civicfix_backend/internal/models"
	"civicfix_backend/internal/services"
	"civicfix_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PollHandler struct {
	*BaseHandler
	pollService services.PollService
}

func NewPollHandler(base *BaseHandler, pollService services.PollService) *PollHandler {
	return &PollHandler{
		BaseHandler: base,
		pollService: pollService,
	}
}

func (h *PollHandler) RegisterRoutes(r *gin.RouterGroup) {
	polls := r.Group("/polls")
	polls.Use(middleware.AuthMiddleware())
	{
		polls.GET("", h.ListActive)
		polls.POST("/:pollId/vote", h.CastVote)
	}

	admin := r.Group("/admin/polls")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.GET("", h.ListAll)
		admin.DELETE("/:pollId", h.Delete)
	}
}

func (h *PollHandler) ListActive(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	polls, err := h.pollService.ListActive(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"polls": polls})
}

func (h *PollHandler) CastVote(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CastPollVoteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	poll, err := h.pollService.CastVote(c.Param("pollId"), userID, *req.OptionIndex)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, poll)
}

func (h *PollHandler) Create(c *gin.Context) {
	var req dto.CreatePollRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	poll, err := h.pollService.Create(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, poll)
}

func (h *PollHandler) ListAll(c *gin.Context) {
	polls, err := h.pollService.ListAllWithResults()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"polls": polls})
}

func (h *PollHandler) Delete(c *gin.Context) {
	if err := h.pollService.Delete(c.Param("pollId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
