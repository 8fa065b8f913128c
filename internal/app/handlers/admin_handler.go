package handlers

import (
	"context"
	"net/http"
	"time"

	appContext "github.com/zaiboost/zaiboost/internal/app/context"
	"github.com/zaiboost/zaiboost/internal/app/service"
)

type AdminHandler struct {
	orderService   service.OrderService
	contextTimeout time.Duration
}

func NewAdminHandler(contextTimeoutSec int, orderService service.OrderService) *AdminHandler {
	return &AdminHandler{
		orderService:   orderService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// GetStats godoc
// @Summary Dashboard stats
// @Description Revenue of completed orders, active and completed order counts and the number of customers.
// @Tags admin
// @Produce json
// @Success 200 {object} StatsResponse "Stats"
// @Failure 401 {object} ErrorResponse "Token required or invalid"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /admin/stats [get]
func (ah *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ah.contextTimeout)
	defer cancel()

	stats, err := ah.orderService.GetStats(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatsResponse{
		Revenue:         stats.Revenue,
		ActiveOrders:    stats.ActiveOrders,
		TotalUsers:      stats.TotalUsers,
		CompletedOrders: stats.CompletedOrders,
	})
}
