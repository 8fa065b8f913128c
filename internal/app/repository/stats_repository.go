package repository

import (
	"context"

	"github.com/zaiboost/zaiboost/internal/app/models"
)

type (
	StatsRepository interface {
		GetStats(ctx context.Context) (*models.Stats, error)
	}
	StatsRepositoryImpl struct {
		ledger *Ledger
	}
)

func NewStatsRepository(ledger *Ledger) *StatsRepositoryImpl {
	return &StatsRepositoryImpl{ledger: ledger}
}

func (sr *StatsRepositoryImpl) GetStats(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{}
	err := sr.ledger.withRead(ctx, func(s *Snapshot) error {
		for _, o := range s.Orders {
			switch {
			case o.Status == models.COMPLETED:
				stats.Revenue += o.TotalPrice
				stats.CompletedOrders++
			case o.Status.Active():
				stats.ActiveOrders++
			}
		}
		for _, u := range s.Users {
			if u.Role == models.RoleCustomer {
				stats.TotalUsers++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
