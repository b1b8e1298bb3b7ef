package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"delivery-api/internal/config"
	"delivery-api/internal/handler"
	"delivery-api/internal/middleware"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	Order  *handler.OrderHandler
	Docs   *handler.DocsHandler
	Health *handler.HealthHandler
}

// New mounts the auth gate ahead of every route, so a route added here is
// protected unless its exact path is in cfg.AuthAllowlist.
func New(cfg *config.Config, authGate *middleware.AuthGate, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM, cfg.TrustProxyHeaders)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)
	r.Use(authGate.Handler)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/openapi.json", h.Docs.OpenAPI)
	r.Get("/docs", h.Docs.SwaggerUI)
	if h.Health != nil {
		r.Get("/health", h.Health.Health)
	}

	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/login", h.Auth.Login)
		auth.Post("/register", h.Auth.Register)
		auth.Get("/me", h.Auth.Me)
	})

	r.Route("/orders", func(orders chi.Router) {
		orders.Post("/", h.Order.Create)
		orders.Get("/{order_id}", h.Order.Get)
		orders.Delete("/{order_id}", h.Order.Delete)
	})

	r.Patch("/deliveries/{order_id}", h.Order.UpdateDelivery)

	return r
}
