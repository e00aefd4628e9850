package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"yellbook/internal/models/request_models"
	"yellbook/internal/services"
	"yellbook/pkg/utils"
)

type EntriesController struct {
	entryService services.EntryServiceInterface
}

func NewEntriesController(entryService services.EntryServiceInterface) *EntriesController {
	return &EntriesController{entryService: entryService}
}

func (ec *EntriesController) ListEntries(c *gin.Context) {
	var query request_models.ListEntriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	entries, err := ec.entryService.ListEntries(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Entries fetched successfully")
}

func (ec *EntriesController) GetEntryByID(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID must be a UUID")
		return
	}

	entry, err := ec.entryService.GetEntryByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Entry fetched successfully")
}

func (ec *EntriesController) ListCategories(c *gin.Context) {
	categories, err := ec.entryService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

func (ec *EntriesController) CreateEntry(c *gin.Context) {
	var req request_models.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	id, err := ec.entryService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": id.String()}, "Entry created successfully")
}

func (ec *EntriesController) UpdateEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID must be a UUID")
		return
	}

	var req request_models.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	req.ID = id

	if err := ec.entryService.UpdateEntry(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Entry updated successfully")
}

func (ec *EntriesController) DeleteEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID must be a UUID")
		return
	}

	if err := ec.entryService.DeleteEntry(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Entry deleted successfully")
}
