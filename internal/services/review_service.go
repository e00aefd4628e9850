package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"yellbook/internal/models/db_models"
	"yellbook/internal/models/request_models"
	"yellbook/internal/models/response_models"
	"yellbook/internal/repositories"
	"yellbook/pkg/utils"
)

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, req request_models.CreateReviewRequest) (response_models.CreatedReview, error)
	GetReviews(ctx context.Context, entryID string) ([]response_models.Review, error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	entryRepo  repositories.EntryRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, entryRepo repositories.EntryRepository) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo: reviewRepo,
		entryRepo:  entryRepo,
	}
}

func (s *ReviewService) AddReview(ctx context.Context, req request_models.CreateReviewRequest) (response_models.CreatedReview, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return response_models.CreatedReview{}, utils.ErrInvalidInput
	}

	entryID, err := uuid.Parse(req.EntryID)
	if err != nil {
		return response_models.CreatedReview{}, utils.ErrInvalidInput
	}

	entry, err := s.entryRepo.GetByID(ctx, req.EntryID)
	if err != nil {
		log.Printf("Error fetching entry: %v", err)
		return response_models.CreatedReview{}, utils.ErrDatabaseError
	}
	if entry == nil {
		return response_models.CreatedReview{}, utils.ErrEntryNotFound
	}

	review := &db_models.Review{
		EntryID: entryID,
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
	}
	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			return response_models.CreatedReview{}, utils.ErrInvalidInput
		}
		review.UserID = &userID
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		log.Printf("Error creating review: %v", err)
		return response_models.CreatedReview{}, utils.ErrDatabaseError
	}

	return response_models.CreatedReview{
		ID:        review.ID.String(),
		EntryID:   review.EntryID.String(),
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *ReviewService) GetReviews(ctx context.Context, entryID string) ([]response_models.Review, error) {
	reviews, err := s.reviewRepo.ListByEntry(ctx, entryID)
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Review, 0, len(reviews))
	for _, review := range reviews {
		resp := response_models.Review{
			ID:        review.ID.String(),
			EntryID:   review.EntryID.String(),
			Rating:    review.Rating,
			Title:     review.Title,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt.Format(time.RFC3339),
		}
		if review.UserID != nil {
			resp.UserID = review.UserID.String()
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
