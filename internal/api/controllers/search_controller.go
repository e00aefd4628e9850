package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"yellbook/internal/models/request_models"
	"yellbook/internal/services"
	"yellbook/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{searchService: searchService}
}

// Search handles POST /api/ai/yellow-books/search. The raw ranked list is
// the response body, matching what the search page consumes.
func (sc *SearchController) Search(c *gin.Context) {
	var req request_models.AISearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	results, err := sc.searchService.Search(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// ClearCache handles DELETE /api/ai/yellow-books/cache?query=.
func (sc *SearchController) ClearCache(c *gin.Context) {
	message, err := sc.searchService.ClearCache(c.Request.Context(), c.Query("query"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
