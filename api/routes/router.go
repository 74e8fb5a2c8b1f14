package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/honeyshop/honeyshop-backend/api/controllers"
	"github.com/honeyshop/honeyshop-backend/api/middleware"
	authsvc "github.com/honeyshop/honeyshop-backend/internal/auth"
	cartpkg "github.com/honeyshop/honeyshop-backend/internal/cart"
	checkoutsvc "github.com/honeyshop/honeyshop-backend/internal/checkout"
	"github.com/honeyshop/honeyshop-backend/internal/inventory"
	"github.com/honeyshop/honeyshop-backend/internal/users"
	"github.com/honeyshop/honeyshop-backend/pkg/auth/session"
	"github.com/honeyshop/honeyshop-backend/pkg/config"
	"github.com/honeyshop/honeyshop-backend/pkg/logger"
	"github.com/honeyshop/honeyshop-backend/pkg/metrics"
)

// NewRouter assembles the full HTTP surface: health probes, the metrics
// endpoint, public catalog reads, the auth flows, and the authenticated
// cart/checkout/admin groups.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	storageProbe func(ctx context.Context) error,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	sessions session.AccessSessionChecker,
	rateLimiter middleware.RateLimiterStore,
	authService authsvc.Service,
	inventoryService inventory.Service,
	checkoutService checkoutsvc.Service,
	carts *cartpkg.Registry,
	usersRepo users.Repository,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, storageProbe))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, rateLimiter, logg)).Post("/login", controllers.Login(authService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, rateLimiter, logg)).Post("/register", controllers.Register(authService, logg))
		r.Post("/refresh", controllers.Refresh(authService, cfg.JWT, carts, logg))
		r.With(middleware.Auth(cfg.JWT, sessions, logg)).Post("/logout", controllers.Logout(authService, carts, logg))
	})

	// Admin self-registration is a dev/test convenience only.
	if !cfg.App.IsProd() {
		r.With(middleware.AuthRateLimit(registerPolicy, rateLimiter, logg)).
			Post("/api/admin/v1/auth/register", controllers.AdminRegister(authService, logg))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ListProducts(inventoryService, logg))
		r.Get("/products/{productId}", controllers.GetProduct(inventoryService, logg))
		r.Get("/categories", controllers.ListCategories())

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessions, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(carts, logg))
				r.Post("/", controllers.AddCartItem(carts, inventoryService, logg))
				r.Delete("/", controllers.ClearCart(carts, logg))
				r.Post("/open", controllers.OpenCart(carts, logg))
				r.Post("/close", controllers.CloseCart(carts, logg))
				r.Put("/items/{itemId}", controllers.SetCartItemQuantity(carts, logg))
				r.Delete("/items/{itemId}", controllers.RemoveCartItem(carts, logg))
			})

			r.Post("/checkout", controllers.Checkout(checkoutService, logg))
			r.Get("/orders", controllers.ListOrders(checkoutService, logg))

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin(logg))

				r.Post("/products", controllers.AdminCreateProduct(inventoryService, logg))
				r.Put("/products/{productId}/quantity", controllers.AdminSetQuantity(inventoryService, logg))
				r.Put("/products/{productId}/featured", controllers.AdminSetFeatured(inventoryService, logg))
				r.Delete("/products/{productId}", controllers.AdminDeleteProduct(inventoryService, logg))
				r.Get("/users", controllers.AdminListUsers(usersRepo, logg))
			})
		})
	})

	return r
}
