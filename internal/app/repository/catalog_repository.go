package repository

import (
	"context"
	"net/http"
	"time"

	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
	"github.com/zaiboost/zaiboost/internal/app/models"
)

type (
	CatalogRepository interface {
		List(ctx context.Context) ([]models.Service, error)
		FindByID(ctx context.Context, id int64) (*models.Service, error)
		SeedIfEmpty(ctx context.Context, services []models.Service) (int, error)
	}
	CatalogRepositoryImpl struct {
		ledger *Ledger
	}
)

func NewCatalogRepository(ledger *Ledger) *CatalogRepositoryImpl {
	return &CatalogRepositoryImpl{ledger: ledger}
}

func (cr *CatalogRepositoryImpl) List(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	err := cr.ledger.withRead(ctx, func(s *Snapshot) error {
		out = make([]models.Service, len(s.Services))
		copy(out, s.Services)
		return nil
	})
	return out, err
}

func (cr *CatalogRepositoryImpl) FindByID(ctx context.Context, id int64) (*models.Service, error) {
	var out *models.Service
	err := cr.ledger.withRead(ctx, func(s *Snapshot) error {
		svc := findService(s, id)
		if svc == nil {
			return appErrors.NewWithCode(ErrNotFound, "Service not found", http.StatusNotFound)
		}
		service := *svc
		out = &service
		return nil
	})
	return out, err
}

// SeedIfEmpty inserts services only when the catalog has none and returns
// how many were added.
func (cr *CatalogRepositoryImpl) SeedIfEmpty(ctx context.Context, services []models.Service) (int, error) {
	added := 0
	err := cr.ledger.withWrite(ctx, func(s *Snapshot) error {
		if len(s.Services) > 0 {
			return errNothingToDo
		}
		now := time.Now().UTC()
		for _, svc := range services {
			s.Counters.Services++
			svc.ID = s.Counters.Services
			svc.CreatedAt = now
			s.Services = append(s.Services, svc)
			added++
		}
		return nil
	})
	if err == errNothingToDo {
		return 0, nil
	}
	return added, err
}

// DefaultCatalog is the catalog a fresh ledger starts with.
func DefaultCatalog() []models.Service {
	daily := func(game, name, description string, perDay int64) models.Service {
		return models.Service{Game: game, Category: models.CategoryDaily, Name: name, Description: description, PricePerUnit: perDay, UnitName: "hari"}
	}
	explore := func(game, name, description string, perPercent int64) models.Service {
		return models.Service{Game: game, Category: models.CategoryExplore, Name: name, Description: description, PricePerUnit: perPercent, UnitName: "%"}
	}
	endgame := func(game, name, description string, base int64, unit string) models.Service {
		return models.Service{Game: game, Category: models.CategoryEndgame, Name: name, Description: description, PriceBase: base, UnitName: unit}
	}
	return []models.Service{
		daily("genshin", "Genshin: Paket Mingguan (7 Hari)", "Daily Commission + Resin + Event + Battle Pass Daily", 5000),
		daily("genshin", "Genshin: Paket Bulanan (30 Hari)", "Full Maintenance: Daily + Resin + Event + BP + Weekly Boss", 4000),
		explore("genshin", "Genshin: Mondstadt 100%", "Eksplorasi wilayah Mondstadt per 1% progress", 2500),
		explore("genshin", "Genshin: Liyue 100%", "Eksplorasi wilayah Liyue per 1% progress", 3000),
		explore("genshin", "Genshin: Inazuma 100%", "Eksplorasi wilayah Inazuma per 1% progress", 3500),
		explore("genshin", "Genshin: Sumeru 100%", "Eksplorasi wilayah Sumeru per 1% progress", 4500),
		explore("genshin", "Genshin: Fontaine 100%", "Eksplorasi wilayah Fontaine per 1% progress", 4000),
		explore("genshin", "Genshin: Natlan 100%", "Eksplorasi wilayah Natlan per 1% progress", 5000),
		endgame("genshin", "Genshin: Spiral Abyss (36 Stars)", "Full Clear Floor 9-12 dengan 36 Bintang (Garansi)", 60000, "clear"),
		endgame("genshin", "Genshin: Imaginarium Theater (Visionary)", "Full Clear Mode Visionary / Hard Mode", 50000, "clear"),
		daily("wuwa", "WuWa: Daily Maintenance (7 Hari)", "Daily Activity + Waveplates + Echo Farming + BP", 6000),
		daily("wuwa", "WuWa: Monthly Maintenance (30 Hari)", "Full Maintenance: Daily + Waveplates + BP + Events", 5000),
		explore("wuwa", "WuWa: Jinzhou 100%", "Eksplorasi wilayah Jinzhou per 1% progress", 3000),
		explore("wuwa", "WuWa: Central Plains 100%", "Eksplorasi wilayah Central Plains per 1% progress", 3500),
		explore("wuwa", "WuWa: Mt. Firmament 100%", "Eksplorasi wilayah Mt. Firmament per 1% progress", 5500),
		explore("wuwa", "WuWa: Black Shores 100%", "Eksplorasi wilayah Black Shores per 1% progress", 6000),
		endgame("wuwa", "WuWa: Tower of Adversity (30/30 Stars)", "Full Clear Hazard Zone dengan 30 Bintang (Garansi)", 75000, "clear"),
		endgame("wuwa", "WuWa: Hologram Calamity (Difficulty 6)", "Clear Hologram Strategy Difficulty 6 (Per Boss)", 30000, "boss"),
	}
}
