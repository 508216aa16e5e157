package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS trips (
	booking_id TEXT PRIMARY KEY,
	trip_date TEXT NOT NULL,
	pickup_time TEXT NOT NULL,
	window_start TEXT NOT NULL DEFAULT '',
	window_end TEXT NOT NULL DEFAULT '',
	pickup_address TEXT NOT NULL DEFAULT '',
	dropoff_address TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'scheduled',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_trips_date ON trips(trip_date);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}
