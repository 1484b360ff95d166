package main

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Storefront/internal/catalog"
	"Storefront/pkg/kit"
)

func main() {
	service := "catalog"
	log := kit.NewLogger(service, getenv("LOG_LEVEL", "info"))
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8082")

	ctx, stop := kit.WithSignals(context.Background())
	defer stop()

	var st catalog.Store = catalog.NewStore()
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			log.Fatal("db pool", zap.Error(err))
		}
		defer pool.Close()

		if err := catalog.Migrate(ctx, pool); err != nil {
			log.Fatal("db migrate", zap.Error(err))
		}

		pg := catalog.NewPostgresStore(pool)
		if os.Getenv("CATALOG_SEED") == "1" {
			if err := pg.Upsert(ctx, catalog.Fixture()); err != nil {
				log.Fatal("db seed", zap.Error(err))
			}
			log.Info("catalog seeded", zap.Int("products", len(catalog.Fixture())))
		}
		st = pg
	}

	s := &catalog.Server{Store: st, Log: log}
	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: true,
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	})

	if err := kit.RunHTTPServer(ctx, ":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
