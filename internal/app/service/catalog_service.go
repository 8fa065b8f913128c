package service

import (
	"context"
	"fmt"

	"github.com/zaiboost/zaiboost/internal/app/logger"
	"github.com/zaiboost/zaiboost/internal/app/models"
	"github.com/zaiboost/zaiboost/internal/app/repository"
	"go.uber.org/zap"
)

type CatalogService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	SeedCatalog(ctx context.Context) error
}

type CatalogServiceImpl struct {
	catalogRepo repository.CatalogRepository
	defaults    []models.Service
}

func NewCatalogService(catalogRepo repository.CatalogRepository, defaults []models.Service) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		catalogRepo: catalogRepo,
		defaults:    defaults,
	}
}

func (cs *CatalogServiceImpl) ListServices(ctx context.Context) ([]models.Service, error) {
	return cs.catalogRepo.List(ctx)
}

// SeedCatalog fills an empty catalog with the default services.
func (cs *CatalogServiceImpl) SeedCatalog(ctx context.Context) error {
	added, err := cs.catalogRepo.SeedIfEmpty(ctx, cs.defaults)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if added > 0 {
		logger.Log.Info("catalog seeded", zap.Int("services", added))
	}
	return nil
}
