package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"fooddonation/config"
	"fooddonation/internal/delivery/http/controllers"
	"fooddonation/internal/domain"
	"fooddonation/internal/repository/memory"
	"fooddonation/internal/repository/postgres"
	"fooddonation/internal/repository/unconfigured"
)

// Store names reported by /healthz.
const (
	storePostgres = "postgres"
	storeMemory   = "memory"
	storeNone     = "none"
)

// stores is the repository set selected at startup.
type stores struct {
	name      string
	donations domain.DonationRepository
	requests  domain.NgoRequestRepository
	// totals is nil when food totals tracking is disabled.
	totals domain.FoodTotalsRepository
	check  controllers.StoreChecker
	db     *sql.DB
}

// openStores selects the store once: postgres when DATABASE_URL is set,
// otherwise the configured fallback. An unreachable database is logged and
// left in place so requests answer 503 until it comes back.
func openStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*stores, error) {
	var s *stores
	switch {
	case cfg.HasDatabase():
		db, schema, err := openPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		s = &stores{
			name:      storePostgres,
			donations: postgres.NewDonationRepository(db, schema),
			requests:  postgres.NewNgoRequestRepository(db, schema),
			totals:    postgres.NewFoodTotalsRepository(db, schema),
			check: func(ctx context.Context) error {
				if err := postgres.Ping(ctx, db, cfg.DBConnectTimeout); err != nil {
					return err
				}
				return schema.Ready()
			},
			db: db,
		}
	case cfg.StoreFallback == config.FallbackNone:
		logger.WarnContext(ctx, "DATABASE_URL not set; data endpoints will answer 503")
		var none unconfigured.Store
		s = &stores{
			name:      storeNone,
			donations: none.DonationRepository(),
			requests:  none.NgoRequestRepository(),
			totals:    none.FoodTotalsRepository(),
		}
	default:
		logger.WarnContext(ctx, "DATABASE_URL not set; using in-memory store, data is lost on restart")
		s = &stores{
			name:      storeMemory,
			donations: memory.NewDonationRepository(),
			requests:  memory.NewNgoRequestRepository(),
			totals:    memory.NewFoodTotalsRepository(),
		}
	}

	if !cfg.TrackFoodTotals {
		s.totals = nil
	}
	return s, nil
}

// openPostgres opens the pool and applies migrations when RUN_MIGRATIONS is set.
// If the database is unreachable, migrations are deferred to the returned gate,
// which repositories consult before their first query.
func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, *postgres.SchemaGate, error) {
	idle := cfg.DBIdleTimeout
	if !cfg.IsProduction() {
		idle = 0
	}
	db, err := postgres.Open(cfg.DBUrl, postgres.Options{
		MaxOpenConns:   cfg.DBMaxOpenConns,
		ConnectTimeout: cfg.DBConnectTimeout,
		IdleTimeout:    idle,
	})
	if err != nil {
		return nil, nil, err
	}
	if !cfg.RunMigrations {
		if err := postgres.Ping(ctx, db, cfg.DBConnectTimeout); err != nil {
			logger.ErrorContext(ctx, "database unreachable at startup", "err", err)
		}
		return db, nil, nil
	}

	gate := postgres.NewSchemaGate(func() error {
		if err := postgres.Migrate(cfg.DBUrl, cfg.DBConnectTimeout); err != nil {
			return err
		}
		logger.Info("migrations applied")
		return nil
	})

	if err := postgres.Ping(ctx, db, cfg.DBConnectTimeout); err != nil {
		logger.ErrorContext(ctx, "database unreachable at startup, migrations deferred", "err", err)
		return db, gate, nil
	}
	if err := gate.Ready(); err != nil {
		if errors.Is(err, postgres.ErrMigration) {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.ErrorContext(ctx, "migrations deferred, database unreachable", "err", err)
	}
	return db, gate, nil
}

func (s *stores) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
