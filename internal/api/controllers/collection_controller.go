package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/internal/models/request_models"
	"inkwell/internal/services"
	"inkwell/pkg/middleware"
	"inkwell/pkg/utils"
)

type CollectionController struct {
	collectionService services.CollectionServiceInterface
}

func NewCollectionController(collectionService services.CollectionServiceInterface) *CollectionController {
	return &CollectionController{
		collectionService: collectionService,
	}
}

func (cc *CollectionController) ListCollections(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	collections, err := cc.collectionService.ListCollections(c.Request.Context(), auth)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"collections": collections}, "")
}

func (cc *CollectionController) CreateCollection(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var req request_models.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name is required")
		return
	}

	collection, err := cc.collectionService.CreateCollection(c.Request.Context(), auth, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"collection": collection}, "Collection created successfully")
}

func (cc *CollectionController) GetCollection(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	collection, err := cc.collectionService.GetCollection(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"collection": collection}, "")
}

func (cc *CollectionController) UpdateCollection(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var req request_models.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name is required")
		return
	}

	collection, err := cc.collectionService.UpdateCollection(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"collection": collection}, "Collection updated successfully")
}

func (cc *CollectionController) DeleteCollection(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	if err := cc.collectionService.DeleteCollection(c.Request.Context(), auth, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Collection deleted successfully")
}

func (cc *CollectionController) TogglePost(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var req request_models.TogglePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Post ID is required")
		return
	}

	collection, added, err := cc.collectionService.TogglePost(c.Request.Context(), auth, c.Param("id"), req.PostID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"collection": collection, "added": added}, "")
}
