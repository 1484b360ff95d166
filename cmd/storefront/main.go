package main

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"Storefront/internal/carousel"
	"Storefront/internal/catalog"
	"Storefront/internal/session"
	"Storefront/internal/store"
	"Storefront/internal/storefront"
	"Storefront/pkg/kit"
)

const defaultBanners = "/images/banner-1.jpg,/images/banner-2.jpg,/images/banner-3.jpg"

func main() {
	service := "storefront"
	log := kit.NewLogger(service, getenv("LOG_LEVEL", "info"))
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")
	catalogURL := getenv("CATALOG_URL", "https://fakestoreapi.com")

	secret := os.Getenv("SESSION_SECRET")
	if len(secret) < 32 {
		log.Fatal("SESSION_SECRET is required and must be at least 32 chars")
	}

	interval := getduration(log, "CAROUSEL_INTERVAL", carousel.DefaultInterval)
	idle := getduration(log, "SESSION_IDLE", storefront.DefaultSessionTTL)

	ctx, stop := kit.WithSignals(context.Background())
	defer stop()

	products := store.NewCatalog()
	root := store.New(products)
	sessions := session.NewRegistry(products, getint(log, "MAX_SESSIONS", session.DefaultMaxSessions))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := storefront.NewMetrics(reg, func() float64 { return float64(sessions.Len()) })

	loader := &storefront.Loader{
		Source:  catalog.NewClient(catalogURL),
		Store:   root,
		Log:     log.With(zap.String("catalog_url", catalogURL)),
		Metrics: metrics,
	}
	go func() { _ = loader.Load(ctx) }()

	banner := carousel.New(splitList(getenv("CAROUSEL_IMAGES", defaultBanners)))
	go banner.Run(ctx, interval)

	go sweepSessions(ctx, sessions, idle, log)

	s := &storefront.Server{
		Store:        root,
		Loader:       loader,
		Sessions:     sessions,
		Tokens:       session.NewTokenMaker(secret),
		Carousel:     banner,
		Log:          log,
		HomeCategory: getenv("HOME_CATEGORY", storefront.DefaultHomeCategory),
		SessionTTL:   idle,
	}

	h := storefront.NewHandler(s, storefront.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: true,
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
		TrustProxy:     os.Getenv("TRUST_PROXY") == "1",
	})

	if err := kit.RunHTTPServer(ctx, ":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func sweepSessions(ctx context.Context, sessions *session.Registry, idle time.Duration, log *zap.Logger) {
	t := time.NewTicker(max(idle/4, time.Second))
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := sessions.Sweep(idle); n > 0 {
				log.Info("idle sessions dropped", zap.Int("count", n))
			}
		}
	}
}

func splitList(s string) []string {
	out := make([]string, 0, 4)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(log *zap.Logger, k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warn("invalid duration, using default", zap.String("key", k), zap.String("value", v))
		return def
	}
	return d
}

func getint(log *zap.Logger, k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn("invalid integer, using default", zap.String("key", k), zap.String("value", v))
		return def
	}
	return n
}
