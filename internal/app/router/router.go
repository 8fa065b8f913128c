package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/zaiboost/zaiboost/docs"
	"github.com/zaiboost/zaiboost/internal/app/handlers"
	"github.com/zaiboost/zaiboost/internal/app/middleware"
	"go.uber.org/ratelimit"
)

type Handlers struct {
	User    *handlers.UserHandler
	Catalog *handlers.CatalogHandler
	Orders  *handlers.OrdersHandler
	Admin   *handlers.AdminHandler
	Reviews *handlers.ReviewsHandler
	Health  *handlers.HealthHandler
}

func NewAppRouter(h Handlers, am middleware.AuthMiddleware, authLimiter ratelimit.Limiter) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger)
	r.Use(middleware.ResponseLogger)
	r.Use(middleware.Instrument)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health.Health)
		r.Get("/services", h.Catalog.ListServices)
		r.Get("/reviews", h.Reviews.GetReviews)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Throttle(authLimiter))
			r.Post("/auth/register", h.User.Register)
			r.Post("/auth/login", h.User.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(am.Authenticate)
			r.Post("/orders", h.Orders.CreateOrder)
			r.Get("/orders/user/{userId}", h.Orders.GetUserOrders)
			r.Post("/reviews", h.Reviews.CreateReview)

			r.Group(func(r chi.Router) {
				r.Use(am.RequireAdmin)
				r.Get("/orders/admin", h.Orders.GetAllOrders)
				r.Patch("/orders/{id}", h.Orders.UpdateOrder)
				r.Get("/admin/stats", h.Admin.GetStats)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteJSONErrorResponse(w, "Not found", http.StatusNotFound)
	})
	return r
}
