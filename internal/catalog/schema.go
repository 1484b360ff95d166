package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id           INTEGER PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL,
	image        TEXT NOT NULL DEFAULT '',
	price        DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	rating_rate  DOUBLE PRECISION NOT NULL DEFAULT 0,
	rating_count INTEGER NOT NULL DEFAULT 0
)`

// Migrate creates the products table if it does not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := pool.Exec(ctx, schema)
		return err
	})
}
