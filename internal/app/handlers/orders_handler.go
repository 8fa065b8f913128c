package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	appContext "github.com/zaiboost/zaiboost/internal/app/context"
	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
	"github.com/zaiboost/zaiboost/internal/app/models"
	"github.com/zaiboost/zaiboost/internal/app/service"
)

const orderCreatedMessage = "Order created"

var errNoIdentity = errors.New("no identity in request context")

type OrdersHandler struct {
	orderService   service.OrderService
	contextTimeout time.Duration
}

func NewOrdersHandler(contextTimeoutSec int, orderService service.OrderService) *OrdersHandler {
	return &OrdersHandler{
		orderService:   orderService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// CreateOrder godoc
// @Summary Place an order
// @Description Places a boosting order for the signed-in user. The game account password is stored encrypted.
// @Description When total_price is omitted the server quotes it from the service pricing.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body CreateOrderDto true "Order details"
// @Success 201 {object} OrderCreatedResponse "Order created"
// @Failure 400 {object} ErrorResponse "Missing fields"
// @Failure 401 {object} ErrorResponse "Token required or invalid"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /orders [post]
func (oh *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), oh.contextTimeout)
	defer cancel()

	identity := appContext.Identity(r.Context())
	if identity == nil {
		PrepareError(w, appErrors.NewWithCode(errNoIdentity, "Token required", http.StatusUnauthorized))
		return
	}

	dto := &CreateOrderDto{}
	if err := decodeBody(r, dto); err != nil {
		PrepareError(w, err)
		return
	}
	err := checkRequired(
		requiredField{"service_id", dto.ServiceID != 0},
		requiredField{"uid", dto.UID != ""},
		requiredField{"server", dto.Server != ""},
		requiredField{"game_username", dto.GameUsername != ""},
		requiredField{"game_password", dto.GamePassword != ""},
	)
	if err != nil {
		PrepareError(w, err)
		return
	}

	order, err := oh.orderService.CreateOrder(ctx, identity.ID, models.OrderDraft{
		ServiceID:    dto.ServiceID,
		Game:         dto.Game,
		UID:          dto.UID,
		Server:       dto.Server,
		GameUsername: dto.GameUsername,
		GamePassword: dto.GamePassword,
		TotalPrice:   int64(math.Round(dto.TotalPrice)),
		StartValue:   dto.StartValue,
		TargetValue:  dto.TargetValue,
		Notes:        dto.Notes,
	})
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OrderCreatedResponse{ID: order.ID, Message: orderCreatedMessage})
}

// GetUserOrders godoc
// @Summary Orders of a user
// @Description Lists the orders of a user, newest first. Customers may only list their own orders.
// @Tags orders
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} OrderDTO "Orders with service name and category"
// @Failure 400 {object} ErrorResponse "Invalid user id"
// @Failure 401 {object} ErrorResponse "Token required or invalid"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /orders/user/{userId} [get]
func (oh *OrdersHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), oh.contextTimeout)
	defer cancel()

	identity := appContext.Identity(r.Context())
	if identity == nil {
		PrepareError(w, appErrors.NewWithCode(errNoIdentity, "Token required", http.StatusUnauthorized))
		return
	}
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Invalid user id", http.StatusBadRequest))
		return
	}

	orders, err := oh.orderService.GetUserOrders(ctx, *identity, userID)
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderDTOs(orders))
}

// GetAllOrders godoc
// @Summary All orders
// @Description Lists every order, newest first, with the owner's username and the decrypted game password.
// @Tags admin
// @Produce json
// @Success 200 {array} OrderDTO "Orders"
// @Failure 401 {object} ErrorResponse "Token required or invalid"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /orders/admin [get]
func (oh *OrdersHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), oh.contextTimeout)
	defer cancel()

	orders, err := oh.orderService.GetAllOrders(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderDTOs(orders))
}

// UpdateOrder godoc
// @Summary Update order progress
// @Description Changes the status and/or the current progress value of an order.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param patch body UpdateOrderDto true "Fields to change"
// @Success 200 {object} SuccessResponse "Order updated"
// @Failure 400 {object} ErrorResponse "Invalid id, unknown status or nothing to update"
// @Failure 401 {object} ErrorResponse "Token required or invalid"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /orders/{id} [patch]
func (oh *OrdersHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), oh.contextTimeout)
	defer cancel()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Invalid order id", http.StatusBadRequest))
		return
	}
	dto := &UpdateOrderDto{}
	if err = decodeBody(r, dto); err != nil {
		PrepareError(w, err)
		return
	}

	patch := models.OrderPatch{CurrentValue: dto.CurrentValue}
	if dto.Status != nil {
		status := models.Status(*dto.Status)
		patch.Status = &status
	}
	if err = oh.orderService.UpdateOrder(ctx, orderID, patch); err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
