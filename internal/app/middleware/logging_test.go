package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	appContext "github.com/zaiboost/zaiboost/internal/app/context"
	"go.uber.org/ratelimit"
)

func TestRequestLogger_RequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = appContext.RequestID(r.Context())
	})

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		RequestLogger(ResponseLogger(next)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		RequestLogger(next).ServeHTTP(w, req)

		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	})
}

func TestThrottle(t *testing.T) {
	calls := 0
	h := Throttle(ratelimit.New(1000))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	start := time.Now()
	for i := 0; i < 5; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	}
	assert.Equal(t, 5, calls)
	assert.Less(t, time.Since(start), time.Second)
}
