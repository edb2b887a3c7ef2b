package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/internal/models/request_models"
	"inkwell/internal/services"
	"inkwell/pkg/utils"
)

// AdminController endpoints are mounted behind RequireRole(admin).
type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

func (a *AdminController) ListUsers(c *gin.Context) {
	users, err := a.adminService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"users": users}, "")
}

func (a *AdminController) Stats(c *gin.Context) {
	stats, err := a.adminService.Stats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "")
}

func (a *AdminController) UpdateUserRole(c *gin.Context) {
	var req request_models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Role is required")
		return
	}

	user, err := a.adminService.UpdateUserRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user": user}, "Role updated successfully")
}
