package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaiboost/zaiboost/internal/app/config"
	"github.com/zaiboost/zaiboost/internal/app/handlers"
	"github.com/zaiboost/zaiboost/internal/app/middleware"
	"github.com/zaiboost/zaiboost/internal/app/repository"
	"github.com/zaiboost/zaiboost/internal/app/secure"
	"github.com/zaiboost/zaiboost/internal/app/service"
	"go.uber.org/ratelimit"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	cfg := config.AppConfig{
		ContextTimeoutSec: 5,
		TokenSecretKey:    "router-test-secret",
		TokenLifetimeSec:  3600,
		EncryptionKey:     "router-test-encryption-key",
	}

	ledger, err := repository.OpenLedger(ctx, repository.NewFilePersister(filepath.Join(t.TempDir(), "db.json")))
	require.NoError(t, err)
	cipher, err := secure.NewCipher(cfg.EncryptionKey)
	require.NoError(t, err)

	cr := repository.NewCatalogRepository(ledger)
	ts := service.NewTokenService(cfg)
	us := service.NewUserService(repository.NewUserRepository(ledger), service.NewLoginGuard(3, time.Minute, time.Minute))
	cs := service.NewCatalogService(cr, repository.DefaultCatalog())
	ors := service.NewOrderService(repository.NewOrderRepository(ledger), cr, repository.NewStatsRepository(ledger), cipher)
	rs := service.NewReviewService(repository.NewReviewRepository(ledger))

	require.NoError(t, cs.SeedCatalog(ctx))
	_, err = us.EnsureAdmin(ctx, "admin", "admin123")
	require.NoError(t, err)

	r := NewAppRouter(Handlers{
		User:    handlers.NewUserHandler(us, ts, cfg.ContextTimeoutSec),
		Catalog: handlers.NewCatalogHandler(cfg.ContextTimeoutSec, cs),
		Orders:  handlers.NewOrdersHandler(cfg.ContextTimeoutSec, ors),
		Admin:   handlers.NewAdminHandler(cfg.ContextTimeoutSec, ors),
		Reviews: handlers.NewReviewsHandler(cfg.ContextTimeoutSec, rs),
		Health:  handlers.NewHealthHandler(time.Now()),
	}, middleware.NewAuthMiddleware(ts), ratelimit.NewUnlimited())

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token, body string) (int, map[string]interface{}, []interface{}) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	if strings.HasPrefix(strings.TrimSpace(string(raw)), "[") {
		var list []interface{}
		require.NoError(t, json.Unmarshal(raw, &list))
		return resp.StatusCode, nil, list
	}
	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &obj))
	return resp.StatusCode, obj, nil
}

func TestRouter_OrderLifecycle(t *testing.T) {
	srv := setupServer(t)

	code, body, _ := call(t, srv, http.MethodPost, "/api/auth/register", "", `{"username":"traveler","password":"paimon123"}`)
	require.Equal(t, http.StatusOK, code)
	customerToken := body["token"].(string)
	customerID := int64(body["id"].(float64))
	assert.Equal(t, "customer", body["role"])

	code, body, _ = call(t, srv, http.MethodPost, "/api/auth/login", "", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, code)
	adminToken := body["token"].(string)

	code, _, services := call(t, srv, http.MethodGet, "/api/services", "", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, services, 18)

	code, body, _ = call(t, srv, http.MethodPost, "/api/orders", customerToken,
		`{"service_id":1,"uid":"800123456","server":"Asia","game_username":"traveler@mail.com","game_password":"hunter22","start_value":0,"target_value":7}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Order created", body["message"])

	code, _, own := call(t, srv, http.MethodGet, "/api/orders/user/2", customerToken, "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, own, 1)
	ownOrder := own[0].(map[string]interface{})
	assert.NotEqual(t, "hunter22", ownOrder["game_password"])
	assert.Equal(t, "pending", ownOrder["status"])
	assert.Equal(t, float64(customerID), ownOrder["user_id"])

	code, body, _ = call(t, srv, http.MethodGet, "/api/orders/user/1", customerToken, "")
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Forbidden", body["error"])

	code, body, _ = call(t, srv, http.MethodGet, "/api/orders/admin", customerToken, "")
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Admin access required", body["error"])

	code, _, all := call(t, srv, http.MethodGet, "/api/orders/admin", adminToken, "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, all, 1)
	adminView := all[0].(map[string]interface{})
	assert.Equal(t, "hunter22", adminView["game_password"])
	assert.Equal(t, "traveler", adminView["username"])

	code, body, _ = call(t, srv, http.MethodPatch, "/api/orders/1", adminToken, `{"status":"completed","current_value":7}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	code, _, _ = call(t, srv, http.MethodPatch, "/api/orders/1", adminToken, `{"status":"shipped"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body, _ = call(t, srv, http.MethodPatch, "/api/orders/99", adminToken, `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Order not found", body["error"])

	code, body, _ = call(t, srv, http.MethodGet, "/api/admin/stats", adminToken, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["completedOrders"])
	assert.Equal(t, float64(0), body["activeOrders"])
	assert.Equal(t, float64(1), body["totalUsers"])
	assert.Greater(t, body["revenue"].(float64), float64(0))

	code, body, _ = call(t, srv, http.MethodPost, "/api/reviews", customerToken, `{"order_id":1,"rating":5,"comment":"Fast and clean"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, float64(1), body["id"])

	code, _, reviews := call(t, srv, http.MethodGet, "/api/reviews", "", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, reviews, 1)
	assert.Equal(t, "traveler", reviews[0].(map[string]interface{})["username"])
}

func TestRouter_AuthErrors(t *testing.T) {
	srv := setupServer(t)

	code, body, _ := call(t, srv, http.MethodPost, "/api/orders", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Token required", body["error"])

	code, body, _ = call(t, srv, http.MethodPost, "/api/orders", "not-a-token", `{}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid or expired token", body["error"])

	code, body, _ = call(t, srv, http.MethodPost, "/api/auth/register", "", `{"username":"admin","password":"whatever"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Username already taken", body["error"])

	for i := 0; i < 3; i++ {
		code, _, _ = call(t, srv, http.MethodPost, "/api/auth/login", "", `{"username":"admin","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, code)
	}
	code, _, _ = call(t, srv, http.MethodPost, "/api/auth/login", "", `{"username":"admin","password":"admin123"}`)
	assert.Equal(t, http.StatusTooManyRequests, code)

	code, body, _ = call(t, srv, http.MethodGet, "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Not found", body["error"])
}

func TestRouter_Operational(t *testing.T) {
	srv := setupServer(t)

	code, body, _ := call(t, srv, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	resp, err := srv.Client().Get(srv.URL + "/swagger/doc.json")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	exposition, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(exposition), "zaiboost_http_requests_total")
}
