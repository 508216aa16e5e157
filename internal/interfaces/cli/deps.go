package cli

import (
	"context"
	"log"

	"github.com/example/dats-assistant/internal/application/usecases"
	"github.com/example/dats-assistant/internal/booking"
	"github.com/example/dats-assistant/internal/infrastructure/config"
	"github.com/example/dats-assistant/internal/infrastructure/dats"
	"github.com/example/dats-assistant/internal/infrastructure/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

// deps wires the same usecases for every command; the web server reuses
// the same set.
type deps struct {
	cfg    config.Config
	pool   *pgxpool.Pool // nil without DATABASE_URL
	book   usecases.BookTrip
	cancel usecases.CancelTrip
	list   usecases.ListTrips
	client *dats.Client
}

func buildDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	client := dats.New(cfg.DATSBaseURL, dats.Credentials{
		ClientID: cfg.DATSClientID,
		Passcode: cfg.DATSPasscode,
	})
	validator := booking.New()

	var pool *pgxpool.Pool
	var trips *postgres.TripRepo
	if cfg.DatabaseURL != "" {
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		trips = postgres.NewTripRepo(pool)
	} else {
		log.Printf("DATABASE_URL not set; trip log disabled")
	}

	return &deps{
		cfg:    cfg,
		pool:   pool,
		client: client,
		book:   usecases.BookTrip{Service: client, Validator: validator, Trips: trips},
		cancel: usecases.CancelTrip{Service: client, Validator: validator, Trips: trips},
		list:   usecases.ListTrips{Service: client, Trips: trips},
	}, nil
}

func (d *deps) close() {
	if d.pool != nil {
		d.pool.Close()
	}
}
