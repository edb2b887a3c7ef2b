package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"inkwell/internal/models/request_models"
	"inkwell/internal/models/response_models"
	"inkwell/internal/services"
	"inkwell/pkg/middleware"
	"inkwell/pkg/utils"
)

const sessionCookieMaxAge = 60 * 60 * 24 * 7 // 1 week, matches token expiry

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (a *AuthController) setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := os.Getenv("APP_ENV") == "production"
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", secure, true)
}

// SignUp godoc
// @Summary Register a new account
// @Description Create a user account and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Signup payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/signup [post]
func (a *AuthController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := a.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setSessionCookie(c, token, sessionCookieMaxAge)
	utils.RespondSuccess(c, gin.H{"user": response_models.BuildUserResponse(user)}, "Account created successfully")
}

// Login godoc
// @Summary Log in
// @Description Authenticate and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setSessionCookie(c, token, sessionCookieMaxAge)
	utils.RespondSuccess(c, gin.H{"user": response_models.BuildUserResponse(user)}, "Login successful")
}

// Logout clears the client-held cookie. The token itself stays valid
// until expiry; there is no server-side revocation list.
func (a *AuthController) Logout(c *gin.Context) {
	a.setSessionCookie(c, "", -1)
	utils.RespondSuccess(c, gin.H{"success": true}, "Logged out")
}

// Me godoc
// @Summary Current user
// @Description Fetch the authenticated user's profile and quota
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (a *AuthController) Me(c *gin.Context) {
	auth, ok := middleware.CurrentAuth(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := a.authService.CurrentUser(c.Request.Context(), auth.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user": response_models.BuildUserResponse(user)}, "")
}
