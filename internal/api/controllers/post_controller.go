package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/internal/models/request_models"
	"inkwell/internal/services"
	"inkwell/pkg/middleware"
	"inkwell/pkg/utils"
)

type PostController struct {
	postService services.PostServiceInterface
}

func NewPostController(postService services.PostServiceInterface) *PostController {
	return &PostController{
		postService: postService,
	}
}

// ListPosts godoc
// @Summary List posts
// @Description List posts with optional status/author filters; published posts are public
// @Tags Posts
// @Produce json
// @Param status query string false "Filter by status"
// @Param authorId query string false "Filter by author"
// @Param limit query int false "Page size"
// @Param page query int false "Page number"
// @Success 200 {object} utils.APIResponse
// @Router /posts [get]
func (p *PostController) ListPosts(c *gin.Context) {
	var query request_models.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := p.postService.ListPosts(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "")
}

func (p *PostController) GetPost(c *gin.Context) {
	post, err := p.postService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"post": post}, "")
}

// CreatePost godoc
// @Summary Create a post
// @Description Create a post; free-tier authors consume one generation
// @Tags Posts
// @Accept json
// @Produce json
// @Param request body request_models.CreatePostRequest true "Post payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts [post]
func (p *PostController) CreatePost(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title and content are required")
		return
	}

	post, err := p.postService.CreatePost(c.Request.Context(), auth, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"post": post}, "Post created successfully")
}

func (p *PostController) UpdatePost(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var req request_models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title and content are required")
		return
	}

	post, err := p.postService.UpdatePost(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"post": post}, "Post updated successfully")
}

func (p *PostController) DeletePost(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	if err := p.postService.DeletePost(c.Request.Context(), auth, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Post deleted successfully")
}

func (p *PostController) LikePost(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	post, err := p.postService.LikePost(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"post": post}, "")
}

func (p *PostController) ToggleSave(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	saved, err := p.postService.ToggleSave(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"saved": saved}, "")
}

func (p *PostController) SavedPosts(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	posts, err := p.postService.SavedPosts(c.Request.Context(), auth)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"savedPosts": posts}, "")
}

func (p *PostController) SearchPosts(c *gin.Context) {
	var query request_models.SearchPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Search query is required")
		return
	}

	posts, err := p.postService.SearchPosts(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"posts": posts}, "")
}
