package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"yellbook/internal/models/request_models"
	"yellbook/internal/services"
	"yellbook/pkg/utils"
)

type ReviewsController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewsController(reviewService services.ReviewServiceInterface) *ReviewsController {
	return &ReviewsController{reviewService: reviewService}
}

func (rc *ReviewsController) CreateReview(c *gin.Context) {
	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unable to create review.")
		return
	}

	review, err := rc.reviewService.AddReview(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (rc *ReviewsController) GetReviews(c *gin.Context) {
	entryID := c.Param("entryId")
	if _, err := uuid.Parse(entryID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID must be a UUID")
		return
	}

	reviews, err := rc.reviewService.GetReviews(c.Request.Context(), entryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}
