package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"yellbook/internal/models/request_models"
	"yellbook/internal/services"
	"yellbook/pkg/utils"
)

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoriesController(categoryService services.CategoryServiceInterface) *CategoriesController {
	return &CategoriesController{categoryService: categoryService}
}

func (cc *CategoriesController) CreateCategory(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Slug and name are required")
		return
	}

	id, err := cc.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": id.String()}, "Category created successfully")
}

func (cc *CategoriesController) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Category ID must be a UUID")
		return
	}

	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Slug and name are required")
		return
	}

	if err := cc.categoryService.UpdateCategory(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category updated successfully")
}

func (cc *CategoriesController) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Category ID must be a UUID")
		return
	}

	if err := cc.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category deleted successfully")
}
