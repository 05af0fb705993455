package components

import (
	"context"
	"log/slog"

	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/infra/db"
	"bluehaven/internal/infra/filestore"
	"bluehaven/internal/infra/repository"
	"bluehaven/internal/infra/uow"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/config"
	"bluehaven/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Stores groups the three record stores of the selected backend.
type Stores struct {
	Reservations shared.ReservationStore
	Payments     shared.PaymentStore
	Reviews      shared.ReviewStore
}

// PersistenceModule selects the backend from STORE_BACKEND once at startup.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(NewStores),
	storeAccessors,
)

// PostgresModule builds the stores over a pool provided elsewhere.
var PostgresModule = fx.Module("persistence/postgres",
	fx.Provide(NewPostgresStores),
	storeAccessors,
)

var storeAccessors = fx.Provide(
	func(s Stores) shared.ReservationStore { return s.Reservations },
	func(s Stores) shared.PaymentStore { return s.Payments },
	func(s Stores) shared.ReviewStore { return s.Reviews },
)

func NewStores(lc fx.Lifecycle, cfg config.Config, settings shared.PropertySettings, clk clock.Clock, logger *slog.Logger) (Stores, error) {
	if cfg.Store.Backend != config.StoreBackendPostgres {
		logger.Info("using file store", "dir", cfg.Store.FileDir, "prefix", cfg.Store.FileName, "occupancy", settings.Occupancy)
		return NewFileStores(cfg.Store, settings.Occupancy, clk, logger), nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return Stores{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
	logger.Info("using postgres store", "host", cfg.DB.Host, "db", cfg.DB.DBName)
	return NewPostgresStores(pool, clk, logger), nil
}

func NewFileStores(cfg config.StoreConfig, policy reservation.OccupancyPolicy, clk clock.Clock, logger *slog.Logger) Stores {
	fs := filestore.New(cfg.FileDir, cfg.FileName, policy, clk, logger)
	return Stores{
		Reservations: fs.Reservations(),
		Payments:     fs.Payments(),
		Reviews:      fs.Reviews(),
	}
}

func NewPostgresStores(pool *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) Stores {
	return Stores{
		Reservations: repository.NewReservationRepository(pool, uow.NewPostgresUoW(pool), clk, logger),
		Payments:     repository.NewPaymentRepository(pool, logger),
		Reviews:      repository.NewReviewRepository(pool, logger),
	}
}
