package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"Storefront/internal/catalog"
	"Storefront/internal/store"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

type CatalogSource interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	GetProduct(ctx context.Context, id int) (catalog.Product, error)
}

// Loader fetches the catalog once per process. A failed load leaves the
// product list empty, which readers treat as still loading.
type Loader struct {
	Source  CatalogSource
	Store   *store.Store
	Log     *zap.Logger
	Metrics *Metrics

	once sync.Once
	err  error
}

// Load makes the single catalog request. Later calls return the first
// result without touching the network. A response that arrives after ctx
// is done is discarded.
func (l *Loader) Load(ctx context.Context) error {
	l.once.Do(func() { l.err = l.load(ctx) })
	return l.err
}

func (l *Loader) load(ctx context.Context) error {
	log := l.logger()
	start := time.Now()

	products, err := l.Source.ListProducts(ctx)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		reason := failureReason(err)
		log.Error("catalog load failed", zap.Error(err), zap.String("reason", reason))
		l.Metrics.loadFailed(reason)
		return err
	}

	l.Store.SetProducts(products)
	l.Metrics.loaded(len(products))
	log.Info("catalog loaded",
		zap.Int("products", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// Product resolves a product for the detail view: from memory once the
// catalog is loaded, otherwise from the catalog service.
func (l *Loader) Product(ctx context.Context, id int) (catalog.Product, error) {
	c := l.Store.Catalog()
	if c.Loaded() {
		if p, ok := c.Lookup(id); ok {
			return p, nil
		}
		return catalog.Product{}, ErrProductNotFound
	}

	p, err := l.Source.GetProduct(ctx, id)
	switch {
	case err == nil:
		if p.ID != id {
			return catalog.Product{}, ErrProductNotFound
		}
		return p, nil
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, catalog.ErrBadStatus):
		return catalog.Product{}, ErrProductNotFound
	default:
		l.logger().Warn("product fetch failed", zap.Error(err), zap.Int("product_id", id))
		return catalog.Product{}, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
}

func (l *Loader) logger() *zap.Logger {
	if l.Log == nil {
		return zap.NewNop()
	}
	return l.Log
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, catalog.ErrMalformed):
		return "malformed"
	case errors.Is(err, catalog.ErrBadStatus), errors.Is(err, catalog.ErrNotFound):
		return "status"
	default:
		return "transport"
	}
}
