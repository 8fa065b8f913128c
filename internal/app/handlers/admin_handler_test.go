package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zaiboost/zaiboost/internal/app/models"
)

func TestAdminHandler_GetStats(t *testing.T) {
	tests := []struct {
		name             string
		mockOrderService func() *MockOrderService
		wantStatusCode   int
		wantResponseBody string
	}{
		{
			name: "Stats",
			mockOrderService: func() *MockOrderService {
				m := &MockOrderService{}
				m.On("GetStats", mock.Anything).Return(&models.Stats{Revenue: 63000, ActiveOrders: 2, TotalUsers: 3, CompletedOrders: 1}, nil)
				return m
			},
			wantStatusCode:   http.StatusOK,
			wantResponseBody: `{"revenue":63000,"activeOrders":2,"totalUsers":3,"completedOrders":1}`,
		},
		{
			name: "Storage Failure",
			mockOrderService: func() *MockOrderService {
				m := &MockOrderService{}
				m.On("GetStats", mock.Anything).Return((*models.Stats)(nil), errors.New("boom"))
				return m
			},
			wantStatusCode:   http.StatusInternalServerError,
			wantResponseBody: `{"error":"Internal Server Error","code":500}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil), admin)
			w := httptest.NewRecorder()

			NewAdminHandler(5, tt.mockOrderService()).GetStats(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
		})
	}
}
