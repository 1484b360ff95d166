package catalog

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Storefront/pkg/kit"
)

// Server exposes a Store over the fake-store product API: list (with
// limit and sort), single product, categories and per-category listing.
type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.readyz)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.list)
		r.Get("/categories", s.categories)
		r.Get("/category/{name}", s.list)
		r.Get("/{id}", s.get)
	})

	return r
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Second)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		s.warn("catalog not ready", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// list serves /products and /products/category/{name}. ?sort=desc reverses
// the id order and ?limit=n keeps the first n.
func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			kit.WriteError(w, r, http.StatusBadRequest, "bad limit", map[string]any{"limit": raw})
			return
		}
		limit = n
	}

	products, ok := s.products(w, r)
	if !ok {
		return
	}

	if name := chi.URLParam(r, "name"); name != "" {
		if r.URL.RawPath != "" {
			if unescaped, err := url.PathUnescape(name); err == nil {
				name = unescaped
			}
		}
		products = slices.DeleteFunc(products, func(p Product) bool { return p.Category != name })
	}
	if q.Get("sort") == "desc" {
		slices.Reverse(products)
	}
	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}

	kit.WriteJSON(w, http.StatusOK, products)
}

// categories lists distinct category names in order of first appearance.
func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	products, ok := s.products(w, r)
	if !ok {
		return
	}

	names := make([]string, 0, 4)
	for _, p := range products {
		if !slices.Contains(names, p.Category) {
			names = append(names, p.Category)
		}
	}
	kit.WriteJSON(w, http.StatusOK, names)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"id": raw})
		return
	}

	p, found, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, "get product failed", err, zap.Int("id", id))
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) products(w http.ResponseWriter, r *http.Request) ([]Product, bool) {
	products, err := s.Store.ListSortedByID(r.Context())
	if err != nil {
		s.fail(w, r, "list products failed", err)
		return nil, false
	}
	if products == nil {
		products = []Product{}
	}
	return products, true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Error(msg, append(fields, zap.Error(err))...)
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}

func (s *Server) warn(msg string, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Warn(msg, fields...)
	}
}
