package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	appContext "github.com/zaiboost/zaiboost/internal/app/context"
	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
	"github.com/zaiboost/zaiboost/internal/app/service"
)

const errMsgRatingRange = "Rating must be between 1 and 5"

type ReviewsHandler struct {
	reviewService  service.ReviewService
	contextTimeout time.Duration
}

func NewReviewsHandler(contextTimeoutSec int, reviewService service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{
		reviewService:  reviewService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// GetReviews godoc
// @Summary Latest reviews
// @Description The ten most recent reviews, newest first, with the author's username.
// @Tags reviews
// @Produce json
// @Success 200 {array} ReviewDTO "Reviews"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /reviews [get]
func (rh *ReviewsHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), rh.contextTimeout)
	defer cancel()

	reviews, err := rh.reviewService.GetLatestReviews(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewDTOs(reviews))
}

// CreateReview godoc
// @Summary Leave a review
// @Description Stores a 1 to 5 star review, optionally tied to an order.
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body CreateReviewDto true "Review"
// @Success 201 {object} ReviewCreatedResponse "Review stored"
// @Failure 400 {object} ErrorResponse "Missing fields or rating out of range"
// @Failure 401 {object} ErrorResponse "Token required or invalid"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /reviews [post]
func (rh *ReviewsHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), rh.contextTimeout)
	defer cancel()

	identity := appContext.Identity(r.Context())
	if identity == nil {
		PrepareError(w, appErrors.NewWithCode(errNoIdentity, "Token required", http.StatusUnauthorized))
		return
	}

	dto := &CreateReviewDto{}
	if err := decodeBody(r, dto); err != nil {
		PrepareError(w, err)
		return
	}
	err := checkRequired(
		requiredField{"rating", dto.Rating != 0},
		requiredField{"comment", dto.Comment != ""},
	)
	if err != nil {
		PrepareError(w, err)
		return
	}
	// ratings are whole stars; 4.5 is out of range just like 9
	if dto.Rating != math.Trunc(dto.Rating) || math.Abs(dto.Rating) > math.MaxInt32 {
		PrepareError(w, appErrors.NewWithCode(errors.New("fractional rating"), errMsgRatingRange, http.StatusBadRequest))
		return
	}
	orderID := dto.OrderID
	if orderID != nil && *orderID == 0 {
		orderID = nil
	}

	review, err := rh.reviewService.CreateReview(ctx, identity.ID, orderID, int(dto.Rating), dto.Comment)
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ReviewCreatedResponse{ID: review.ID})
}
