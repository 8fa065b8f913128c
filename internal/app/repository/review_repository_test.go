package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaiboost/zaiboost/internal/app/models"
)

func TestReviewRepositoryImpl_GetLatestReviews(t *testing.T) {
	ledger, _ := setupLedger(t)
	ctx := context.Background()
	user := newUser(t, "traveler", models.RoleCustomer)
	require.NoError(t, NewUserRepository(ledger).Create(ctx, user))

	repo := NewReviewRepository(ledger)
	orderID := int64(7)
	for i := 1; i <= 11; i++ {
		var ref *int64
		if i == 11 {
			ref = &orderID
		}
		review, err := models.NewReview(user.ID, ref, i%5+1, fmt.Sprintf("review %d", i), time.Now())
		require.NoError(t, err)
		require.NoError(t, repo.CreateReview(ctx, review))
		assert.Equal(t, int64(i), review.ID)
	}

	latest, err := repo.GetLatestReviews(ctx, 10)
	require.NoError(t, err)
	require.Len(t, latest, 10)

	assert.Equal(t, int64(11), latest[0].ID)
	assert.Equal(t, "review 11", latest[0].Comment)
	require.NotNil(t, latest[0].OrderID)
	assert.Equal(t, int64(7), *latest[0].OrderID)
	assert.Equal(t, int64(2), latest[9].ID)
	for _, r := range latest {
		assert.NotEqual(t, int64(1), r.ID, "the oldest review must be dropped")
		assert.Equal(t, "traveler", r.Username)
	}
}

func TestReviewRepositoryImpl_Empty(t *testing.T) {
	ledger, _ := setupLedger(t)
	latest, err := NewReviewRepository(ledger).GetLatestReviews(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, latest)
	assert.Empty(t, latest)
}
