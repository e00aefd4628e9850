package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"yellbook/internal/models/request_models"
	"yellbook/internal/services"
	"yellbook/pkg/utils"
)

type TagsController struct {
	tagService services.TagServiceInterface
}

func NewTagsController(tagService services.TagServiceInterface) *TagsController {
	return &TagsController{tagService: tagService}
}

func (tc *TagsController) ListAllTags(c *gin.Context) {
	// Non-numeric values parse to zero and fail the service's range checks.
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	tags, err := tc.tagService.GetAllTags(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tags, "Fetched tags successfully")
}

func (tc *TagsController) CreateTag(c *gin.Context) {
	var req request_models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Label is required")
		return
	}

	id, err := tc.tagService.CreateTag(c.Request.Context(), req.Label)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": id.String()}, "Tag created successfully")
}

func (tc *TagsController) DeleteTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Tag ID must be a UUID")
		return
	}

	if err := tc.tagService.DeleteTag(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Tag deleted successfully")
}
