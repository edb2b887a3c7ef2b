package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/internal/models/request_models"
	"inkwell/internal/services"
	"inkwell/pkg/middleware"
	"inkwell/pkg/utils"
)

type AssistController struct {
	assistService services.AssistServiceInterface
}

func NewAssistController(assistService services.AssistServiceInterface) *AssistController {
	return &AssistController{
		assistService: assistService,
	}
}

// ImproveContent godoc
// @Summary Improve content
// @Description Forward content to the generative service; consumes one free-tier generation
// @Tags Generate
// @Accept json
// @Produce json
// @Param request body request_models.ImproveContentRequest true "Content payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generate/improve [post]
func (a *AssistController) ImproveContent(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var req request_models.ImproveContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Content is required")
		return
	}

	improved, err := a.assistService.ImproveContent(c.Request.Context(), auth, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"improvedContent": improved}, "")
}
