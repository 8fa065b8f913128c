package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zaiboost/zaiboost/internal/app/config"
	"github.com/zaiboost/zaiboost/internal/app/handlers"
	"github.com/zaiboost/zaiboost/internal/app/logger"
	"github.com/zaiboost/zaiboost/internal/app/middleware"
	"github.com/zaiboost/zaiboost/internal/app/repository"
	"github.com/zaiboost/zaiboost/internal/app/router"
	"github.com/zaiboost/zaiboost/internal/app/secure"
	"github.com/zaiboost/zaiboost/internal/app/service"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// @title           ZaiBoost API
// @version         1.0
// @description     Order management backend for a game boosting service: catalog, orders with encrypted account credentials, progress tracking and reviews.

// @license.name  MIT

// @host      localhost:3000
// @BasePath  /api

// @securityDefinitions.apikey  ApiKeyAuth
// @in header
// @name Authorization
func main() {
	startedAt := time.Now()

	c, err := config.ParseFlags()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err = logger.InitLogger(c.LogLevel); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Log.Sync()

	// Server run context
	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	// setup storage
	persister, closeStorage, err := repository.NewPersister(c)
	if err != nil {
		logger.Log.Fatal("failed to open storage", zap.Error(err))
	}
	defer closeStorage()
	ledger, err := repository.OpenLedger(serverCtx, persister)
	if err != nil {
		logger.Log.Fatal("failed to load ledger", zap.Error(err))
	}
	cipher, err := secure.NewCipher(c.EncryptionKey)
	if err != nil {
		logger.Log.Fatal("failed to init cipher", zap.Error(err))
	}

	// setup repositories
	ur := repository.NewUserRepository(ledger)
	cr := repository.NewCatalogRepository(ledger)
	or := repository.NewOrderRepository(ledger)
	rr := repository.NewReviewRepository(ledger)
	sr := repository.NewStatsRepository(ledger)

	// setup services
	ts := service.NewTokenService(c)
	lockout := time.Duration(c.LoginLockoutSec) * time.Second
	lg := service.NewLoginGuard(c.LoginMaxAttempts, lockout, lockout)
	us := service.NewUserService(ur, lg)
	cs := service.NewCatalogService(cr, repository.DefaultCatalog())
	ors := service.NewOrderService(or, cr, sr, cipher)
	rs := service.NewReviewService(rr)

	if err = cs.SeedCatalog(serverCtx); err != nil {
		logger.Log.Fatal("failed to seed catalog", zap.Error(err))
	}
	if _, err = us.EnsureAdmin(serverCtx, c.AdminUsername, c.AdminPassword); err != nil {
		logger.Log.Fatal("failed to seed admin", zap.Error(err))
	}

	// setup handlers
	h := router.Handlers{
		User:    handlers.NewUserHandler(us, ts, c.ContextTimeoutSec),
		Catalog: handlers.NewCatalogHandler(c.ContextTimeoutSec, cs),
		Orders:  handlers.NewOrdersHandler(c.ContextTimeoutSec, ors),
		Admin:   handlers.NewAdminHandler(c.ContextTimeoutSec, ors),
		Reviews: handlers.NewReviewsHandler(c.ContextTimeoutSec, rs),
		Health:  handlers.NewHealthHandler(startedAt),
	}
	am := middleware.NewAuthMiddleware(ts)
	r := router.NewAppRouter(h, am, ratelimit.New(c.HashRatePerSecond))

	// The HTTP Server
	server := &http.Server{Addr: c.ServerAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	// Listen for syscall signals for process to interrupt/quit
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		// Shutdown signal with grace period of 30 seconds
		shutdownCtx, cancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelFunc()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("graceful shutdown failed", zap.Error(err))
		}
		serverStopCtx()
	}()

	// Run the server
	logger.Log.Info("starting server", zap.String("addr", c.ServerAddr))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatal("server failed", zap.Error(err))
	}
	// Wait for server context to be stopped
	<-serverCtx.Done()
	logger.Log.Info("server stopped")
}
