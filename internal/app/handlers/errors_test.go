package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	appContext "github.com/zaiboost/zaiboost/internal/app/context"
	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
)

func TestPrepareError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "Coded Error",
			err:      appErrors.NewWithCode(errors.New("x"), "Order not found", http.StatusNotFound),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Order not found","code":404}`,
		},
		{
			name:     "Wrapped Coded Error",
			err:      fmt.Errorf("create order: %w", appErrors.NewWithCode(errors.New("x"), "Service not found", http.StatusNotFound)),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Service not found","code":404}`,
		},
		{
			name:     "Missing Fields",
			err:      appErrors.NewMissingFields("uid", "server"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Missing: uid, server","code":400,"fields":["uid","server"]}`,
		},
		{
			name:     "Canceled Context",
			err:      appContext.MapContextError(context.Canceled),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Request canceled","code":500}`,
		},
		{
			name:     "Plain Error Is Hidden",
			err:      errors.New("persist snapshot: disk full"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error","code":500}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			PrepareError(w, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
