package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
	"github.com/zaiboost/zaiboost/internal/app/models"
	"github.com/zaiboost/zaiboost/internal/app/repository"
)

const latestReviewsLimit = 10

type ReviewService interface {
	CreateReview(ctx context.Context, userID int64, orderID *int64, rating int, comment string) (*models.Review, error)
	GetLatestReviews(ctx context.Context) ([]models.ReviewView, error)
}

type ReviewServiceImpl struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) *ReviewServiceImpl {
	return &ReviewServiceImpl{reviewRepo: reviewRepo}
}

func (rs *ReviewServiceImpl) CreateReview(ctx context.Context, userID int64, orderID *int64, rating int, comment string) (*models.Review, error) {
	review, err := models.NewReview(userID, orderID, rating, comment, time.Now().UTC())
	switch {
	case errors.Is(err, models.ErrInvalidRating):
		return nil, appErrors.NewWithCode(err, "Rating must be between 1 and 5", http.StatusBadRequest)
	case errors.Is(err, models.ErrMissingField):
		return nil, appErrors.NewMissingFields("comment")
	case err != nil:
		return nil, fmt.Errorf("build review: %w", err)
	}
	if err = rs.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (rs *ReviewServiceImpl) GetLatestReviews(ctx context.Context) ([]models.ReviewView, error) {
	return rs.reviewRepo.GetLatestReviews(ctx, latestReviewsLimit)
}
