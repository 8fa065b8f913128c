package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
	"github.com/zaiboost/zaiboost/internal/app/logger"
	"github.com/zaiboost/zaiboost/internal/app/metrics"
	"github.com/zaiboost/zaiboost/internal/app/models"
	"github.com/zaiboost/zaiboost/internal/app/repository"
	"go.uber.org/zap"
)

// SecretCipher seals and opens game account passwords.
type SecretCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(envelope string) string
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID int64, draft models.OrderDraft) (*models.Order, error)
	GetUserOrders(ctx context.Context, requester models.Identity, userID int64) ([]models.OrderView, error)
	GetAllOrders(ctx context.Context) ([]models.OrderView, error)
	UpdateOrder(ctx context.Context, orderID int64, patch models.OrderPatch) error
	GetStats(ctx context.Context) (*models.Stats, error)
}

type OrderServiceImpl struct {
	orderRepo   repository.OrderRepository
	catalogRepo repository.CatalogRepository
	statsRepo   repository.StatsRepository
	cipher      SecretCipher
}

func NewOrderService(orderRepo repository.OrderRepository, catalogRepo repository.CatalogRepository,
	statsRepo repository.StatsRepository, cipher SecretCipher) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		statsRepo:   statsRepo,
		cipher:      cipher,
	}
}

func (os *OrderServiceImpl) CreateOrder(ctx context.Context, userID int64, draft models.OrderDraft) (*models.Order, error) {
	svc, err := os.catalogRepo.FindByID(ctx, draft.ServiceID)
	if err != nil {
		return nil, err
	}

	envelope := ""
	if draft.GamePassword != "" {
		envelope, err = os.cipher.Encrypt(draft.GamePassword)
		if err != nil {
			return nil, fmt.Errorf("encrypt game password: %w", err)
		}
	}

	order, err := models.NewOrder(userID, *svc, draft, envelope, time.Now().UTC())
	if errors.Is(err, models.ErrMissingField) {
		return nil, appErrors.NewWithCode(err, err.Error(), http.StatusBadRequest)
	}
	if err != nil {
		return nil, fmt.Errorf("build order: %w", err)
	}
	if quote := svc.Quote(draft.StartValue, draft.TargetValue); draft.TotalPrice != 0 && draft.TotalPrice != quote {
		logger.Log.Warn("order total differs from quote",
			zap.Int64("userID", userID),
			zap.Int64("serviceID", svc.ID),
			zap.Int64("total", draft.TotalPrice),
			zap.Int64("quote", quote))
	}

	if err = os.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	metrics.OrdersCreated.WithLabelValues(order.Game, svc.Category.String()).Inc()
	return order, nil
}

// GetUserOrders lists the orders of userID. Only the owner and admins may
// look. Stored passwords stay sealed.
func (os *OrderServiceImpl) GetUserOrders(ctx context.Context, requester models.Identity, userID int64) ([]models.OrderView, error) {
	if !requester.IsAdmin() && requester.ID != userID {
		return nil, appErrors.NewWithCode(errors.New("foreign orders requested"), "Forbidden", http.StatusForbidden)
	}
	return os.orderRepo.GetOrdersByUserID(ctx, userID)
}

// GetAllOrders lists every order with its game password opened.
func (os *OrderServiceImpl) GetAllOrders(ctx context.Context) ([]models.OrderView, error) {
	orders, err := os.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].GamePassword != "" {
			orders[i].GamePassword = os.cipher.Decrypt(orders[i].GamePassword)
		}
	}
	return orders, nil
}

func (os *OrderServiceImpl) UpdateOrder(ctx context.Context, orderID int64, patch models.OrderPatch) error {
	if err := patch.Validate(); err != nil {
		return appErrors.NewWithCode(err, err.Error(), http.StatusBadRequest)
	}
	order, err := os.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status.Terminal() {
		logger.Log.Warn("editing order in terminal state",
			zap.Int64("orderID", orderID),
			zap.String("status", order.Status.String()))
	}
	if _, err = os.orderRepo.UpdateOrder(ctx, orderID, patch); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if patch.Status != nil {
		metrics.OrderStatusChanges.WithLabelValues(patch.Status.String()).Inc()
	}
	return nil
}

func (os *OrderServiceImpl) GetStats(ctx context.Context) (*models.Stats, error) {
	return os.statsRepo.GetStats(ctx)
}
