package storefront

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"Storefront/internal/session"
	"Storefront/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// TrustProxy keys the session rate limit on X-Forwarded-For.
	TrustProxy bool
}

const (
	sessionLimitPerMin = 10
	limitWindow        = 60 * time.Second
)

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))

	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry)
		r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePattern))

		if deps.MetricsEnabled {
			r.With(kit.MetricsAuth(deps.MetricsToken)).
				Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
		}
	}

	r.Get("/healthz", healthz)
	r.Get("/readyz", s.readyz)

	r.Get("/home", s.home)
	r.Get("/carousel", s.carousel)
	r.Get("/products", s.listProducts)
	r.Get("/products/{id}", s.getProduct)
	r.Get("/categories", s.listCategories)
	r.Get("/categories/{name}", s.categoryProducts)
	r.Get("/search", s.search)

	sessionLimiter := kit.NewIPRateLimiter(sessionLimitPerMin, limitWindow)
	sessionLimiter.TrustProxy = deps.TrustProxy
	r.With(sessionLimiter.Middleware).Post("/session", s.newSession)

	r.Group(func(pr chi.Router) {
		pr.Use(session.RequireSession(s.Tokens, s.Sessions))

		pr.Get("/wishlist", s.getWishlist)
		pr.Post("/wishlist/{id}/toggle", s.toggleWishlist)

		pr.Get("/cart", s.getCart)
		pr.Post("/cart/checkout", s.checkout)
		pr.Post("/cart/{id}", s.addToCart)
		pr.Post("/cart/{id}/increment", s.incrementQuantity)
		pr.Post("/cart/{id}/decrement", s.decrementQuantity)
	})

	return r
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if !s.Store.Catalog().Loaded() {
		kit.WriteError(w, r, http.StatusServiceUnavailable, "catalog loading", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}
