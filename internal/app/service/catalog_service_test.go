package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zaiboost/zaiboost/internal/app/models"
)

func TestCatalogServiceImpl_SeedCatalog(t *testing.T) {
	defaults := []models.Service{dailyService}

	t.Run("Seeds Empty Catalog", func(t *testing.T) {
		repo := &MockCatalogRepository{}
		repo.On("SeedIfEmpty", mock.Anything, defaults).Return(1, nil)
		require.NoError(t, NewCatalogService(repo, defaults).SeedCatalog(context.Background()))
		repo.AssertExpectations(t)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		repo := &MockCatalogRepository{}
		repo.On("SeedIfEmpty", mock.Anything, defaults).Return(0, errors.New("disk full"))
		err := NewCatalogService(repo, defaults).SeedCatalog(context.Background())
		assert.ErrorContains(t, err, "seed catalog: disk full")
	})
}

func TestCatalogServiceImpl_ListServices(t *testing.T) {
	repo := &MockCatalogRepository{}
	repo.On("List", mock.Anything).Return([]models.Service{dailyService}, nil)

	got, err := NewCatalogService(repo, nil).ListServices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Service{dailyService}, got)
}
