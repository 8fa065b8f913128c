package repository

import (
	"context"

	"github.com/zaiboost/zaiboost/internal/app/models"
)

type (
	ReviewRepository interface {
		CreateReview(ctx context.Context, review *models.Review) error
		GetLatestReviews(ctx context.Context, limit int) ([]models.ReviewView, error)
	}
	ReviewRepositoryImpl struct {
		ledger *Ledger
	}
)

func NewReviewRepository(ledger *Ledger) *ReviewRepositoryImpl {
	return &ReviewRepositoryImpl{ledger: ledger}
}

func (rr *ReviewRepositoryImpl) CreateReview(ctx context.Context, review *models.Review) error {
	return rr.ledger.withWrite(ctx, func(s *Snapshot) error {
		s.Counters.Reviews++
		review.ID = s.Counters.Reviews
		s.Reviews = append(s.Reviews, *review)
		return nil
	})
}

// GetLatestReviews returns the last limit reviews in insertion order,
// newest first, with the author's username attached.
func (rr *ReviewRepositoryImpl) GetLatestReviews(ctx context.Context, limit int) ([]models.ReviewView, error) {
	out := make([]models.ReviewView, 0, limit)
	err := rr.ledger.withRead(ctx, func(s *Snapshot) error {
		for i := len(s.Reviews) - 1; i >= 0 && len(out) < limit; i-- {
			view := models.ReviewView{Review: s.Reviews[i]}
			if u := findUser(s, s.Reviews[i].UserID); u != nil {
				view.Username = u.Username
			}
			out = append(out, view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
