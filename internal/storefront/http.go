package storefront

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Storefront/internal/carousel"
	"Storefront/internal/catalog"
	"Storefront/internal/session"
	"Storefront/internal/store"
	"Storefront/internal/views"
	"Storefront/pkg/kit"
)

const (
	DefaultHomeCategory = "women's clothing"
	DefaultSessionTTL   = 24 * time.Hour
)

type Server struct {
	Store    *store.Store
	Loader   *Loader
	Sessions *session.Registry
	Tokens   *session.TokenMaker
	Carousel *carousel.Carousel
	Log      *zap.Logger

	HomeCategory string
	SessionTTL   time.Duration
}

type productsResp struct {
	Loading  bool              `json:"loading"`
	Products []catalog.Product `json:"products"`
}

type wishlistResp struct {
	Loading    bool              `json:"loading"`
	InWishlist *bool             `json:"in_wishlist,omitempty"`
	Items      []catalog.Product `json:"items"`
}

type cartResp struct {
	Lines      []store.CartLine `json:"lines"`
	Count      int              `json:"count"`
	TotalCents int64            `json:"total_cents"`
}

type sessionResp struct {
	SessionToken string `json:"session_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	category := s.HomeCategory
	if category == "" {
		category = DefaultHomeCategory
	}
	kit.WriteJSON(w, http.StatusOK, views.BuildHome(s.Store.Products(), category))
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	ps := s.Store.Products()
	kit.WriteJSON(w, http.StatusOK, productsResp{Loading: len(ps) == 0, Products: views.All(ps)})
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	p, err := s.Loader.Product(r.Context(), id)
	switch {
	case err == nil:
		kit.WriteJSON(w, http.StatusOK, p)
	case errors.Is(err, ErrProductNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"id": id})
	case errors.Is(err, ErrCatalogUnavailable):
		kit.WriteError(w, r, http.StatusBadGateway, "failed to fetch product", nil)
	default:
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, views.Categories(s.Store.Products()))
}

func (s *Server) categoryProducts(w http.ResponseWriter, r *http.Request) {
	ps := s.Store.Products()
	name := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		// chi routes on RawPath when it is set, leaving params escaped
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}
	kit.WriteJSON(w, http.StatusOK, productsResp{
		Loading:  len(ps) == 0,
		Products: views.ByCategory(ps, name, -1),
	})
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	ps := s.Store.Products()
	kit.WriteJSON(w, http.StatusOK, productsResp{
		Loading:  len(ps) == 0,
		Products: views.Search(ps, r.URL.Query().Get("q")),
	})
}

func (s *Server) carousel(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Carousel.Current())
}

func (s *Server) newSession(w http.ResponseWriter, r *http.Request) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	tok, sid, err := s.Tokens.New(ttl)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("session token issue", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if _, err := s.Sessions.Get(sid); err != nil {
		if s.Log != nil {
			s.Log.Warn("session refused", zap.Error(err), zap.Int("live", s.Sessions.Len()))
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, "session capacity reached", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, sessionResp{SessionToken: tok, ExpiresIn: int64(ttl.Seconds())})
}

func (s *Server) getWishlist(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, wishlistResp{
		Loading: !st.Catalog().Loaded(),
		Items:   views.Wishlist(st.Wishlist()),
	})
}

func (s *Server) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	st, p, ok := s.resolve(w, r)
	if !ok {
		return
	}

	in := st.ToggleWishlist(p)
	kit.WriteJSON(w, http.StatusOK, wishlistResp{InWishlist: &in, Items: st.Wishlist()})
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, summarize(st))
}

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	s.mutateCart(w, r, (*store.Store).AddToCart)
}

func (s *Server) incrementQuantity(w http.ResponseWriter, r *http.Request) {
	s.mutateCart(w, r, (*store.Store).IncrementQuantity)
}

func (s *Server) decrementQuantity(w http.ResponseWriter, r *http.Request) {
	s.mutateCart(w, r, (*store.Store).DecrementQuantity)
}

func (s *Server) mutateCart(w http.ResponseWriter, r *http.Request, op func(*store.Store, catalog.Product)) {
	st, p, ok := s.resolve(w, r)
	if !ok {
		return
	}
	op(st, p)
	kit.WriteJSON(w, http.StatusOK, summarize(st))
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	order := receipt(st.TakeCart())

	if s.Log != nil {
		s.Log.Info("checkout",
			zap.Int("items", order.Count),
			zap.Int64("total_cents", order.TotalCents),
		)
	}
	kit.WriteJSON(w, http.StatusOK, order)
}

// resolve returns the session store and the catalog product named by the
// {id} URL parameter, writing the error response when either is missing.
func (s *Server) resolve(w http.ResponseWriter, r *http.Request) (*store.Store, catalog.Product, bool) {
	st, ok := sessionStore(w, r)
	if !ok {
		return nil, catalog.Product{}, false
	}

	id, ok := productID(w, r)
	if !ok {
		return nil, catalog.Product{}, false
	}

	c := st.Catalog()
	if !c.Loaded() {
		kit.WriteError(w, r, http.StatusServiceUnavailable, "catalog loading", nil)
		return nil, catalog.Product{}, false
	}

	p, found := c.Lookup(id)
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"id": id})
		return nil, catalog.Product{}, false
	}
	return st, p, true
}

func sessionStore(w http.ResponseWriter, r *http.Request) (*store.Store, bool) {
	st, ok := session.StoreFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return nil, false
	}
	return st, true
}

func productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", map[string]any{"id": raw})
		return 0, false
	}
	return id, true
}

// receipt prices a copy of cart lines.
func receipt(lines []store.CartLine) cartResp {
	if lines == nil {
		lines = []store.CartLine{}
	}
	return cartResp{Lines: lines, Count: store.LinesCount(lines), TotalCents: store.LinesTotal(lines)}
}

func summarize(st *store.Store) cartResp {
	return receipt(st.Cart())
}
