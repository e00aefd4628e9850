package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"yellbook/internal/models/request_models"
	"yellbook/internal/services"
)

const revalidateHeader = "X-Revalidate-Token"

type RevalidateController struct {
	entryService services.EntryServiceInterface
}

func NewRevalidateController(entryService services.EntryServiceInterface) *RevalidateController {
	return &RevalidateController{entryService: entryService}
}

// Revalidate is the token-gated webhook that drops cached pages for one
// entry and/or the collection listing. An unset REVALIDATE_TOKEN leaves the
// endpoint open, matching the deployment default.
func (rc *RevalidateController) Revalidate(c *gin.Context) {
	expected := os.Getenv("REVALIDATE_TOKEN")
	if expected != "" {
		provided := c.GetHeader(revalidateHeader)
		if provided == "" {
			provided = c.Query("token")
		}
		if provided != expected {
			c.JSON(http.StatusUnauthorized, gin.H{"revalidated": false, "error": "Invalid token"})
			return
		}
	}

	var req request_models.RevalidateRequest
	_ = c.ShouldBindJSON(&req)

	tags := rc.entryService.Revalidate(c.Request.Context(), req)

	c.JSON(http.StatusOK, gin.H{
		"revalidated": true,
		"tags":        tags,
		"timestamp":   time.Now().UnixMilli(),
	})
}
