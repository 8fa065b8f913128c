package repository

import (
	"context"
	"net/http"
	"sort"

	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
	"github.com/zaiboost/zaiboost/internal/app/models"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error)
	GetOrdersByUserID(ctx context.Context, userID int64) ([]models.OrderView, error)
	GetAllOrders(ctx context.Context) ([]models.OrderView, error)
	UpdateOrder(ctx context.Context, orderID int64, patch models.OrderPatch) (*models.Order, error)
}

type OrderRepositoryImpl struct {
	ledger *Ledger
}

func NewOrderRepository(ledger *Ledger) *OrderRepositoryImpl {
	return &OrderRepositoryImpl{ledger: ledger}
}

func (or *OrderRepositoryImpl) CreateOrder(ctx context.Context, order *models.Order) error {
	return or.ledger.withWrite(ctx, func(s *Snapshot) error {
		if findService(s, order.ServiceID) == nil {
			return appErrors.NewWithCode(ErrNotFound, "Service not found", http.StatusNotFound)
		}
		s.Counters.Orders++
		order.ID = s.Counters.Orders
		s.Orders = append(s.Orders, *order)
		return nil
	})
}

func (or *OrderRepositoryImpl) GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error) {
	var out *models.Order
	err := or.ledger.withRead(ctx, func(s *Snapshot) error {
		o := findOrder(s, orderID)
		if o == nil {
			return appErrors.NewWithCode(ErrNotFound, "Order not found", http.StatusNotFound)
		}
		order := *o
		out = &order
		return nil
	})
	return out, err
}

func (or *OrderRepositoryImpl) GetOrdersByUserID(ctx context.Context, userID int64) ([]models.OrderView, error) {
	return or.views(ctx, func(o *models.Order) bool { return o.UserID == userID })
}

func (or *OrderRepositoryImpl) GetAllOrders(ctx context.Context) ([]models.OrderView, error) {
	return or.views(ctx, func(*models.Order) bool { return true })
}

func (or *OrderRepositoryImpl) UpdateOrder(ctx context.Context, orderID int64, patch models.OrderPatch) (*models.Order, error) {
	var out *models.Order
	err := or.ledger.withWrite(ctx, func(s *Snapshot) error {
		o := findOrder(s, orderID)
		if o == nil {
			return appErrors.NewWithCode(ErrNotFound, "Order not found", http.StatusNotFound)
		}
		patch.Apply(o)
		order := *o
		out = &order
		return nil
	})
	return out, err
}

// views joins every matching order with its service and owner, newest first.
func (or *OrderRepositoryImpl) views(ctx context.Context, match func(*models.Order) bool) ([]models.OrderView, error) {
	out := make([]models.OrderView, 0)
	err := or.ledger.withRead(ctx, func(s *Snapshot) error {
		for i := range s.Orders {
			o := &s.Orders[i]
			if !match(o) {
				continue
			}
			view := models.OrderView{Order: *o}
			if svc := findService(s, o.ServiceID); svc != nil {
				view.ServiceName = svc.Name
				view.ServiceCategory = svc.Category
			}
			if u := findUser(s, o.UserID); u != nil {
				view.Username = u.Username
			}
			out = append(out, view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
