package components

import (
	"log/slog"

	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/domain/user"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/config"
	"bluehaven/internal/usecase"
	"bluehaven/internal/usecase/commands"
	"bluehaven/internal/usecase/queries"
	"bluehaven/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	NewPropertySettings,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	NewReservationFactory,
	NewStaffAccounts,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
		commands.NewReviewCommands,
		commands.NewReminderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewGuestQueries,
		queries.NewReminderQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewClock(cfg config.Config) clock.Clock {
	return clock.NewRealClockIn(cfg.Property.Location())
}

func NewPropertySettings(cfg config.Config) (shared.PropertySettings, error) {
	policy, err := reservation.NewOccupancyPolicy(cfg.Property.OccupancyPolicy)
	if err != nil {
		return shared.PropertySettings{}, err
	}
	return shared.PropertySettings{
		Name:      cfg.Property.Name,
		Location:  cfg.Property.Location(),
		Occupancy: policy,
		Capacity:  cfg.Property.Capacity,
		MaxNights: cfg.Property.MaxNights,
	}, nil
}

func NewPriceCalculator(cfg config.Config) (*reservation.TariffCalculator, error) {
	tariff, err := reservation.NewTariff(
		reservation.NewMoney(cfg.Property.NightlyRateCents),
		reservation.NewMoney(cfg.Property.CleaningFeeCents),
		cfg.Property.DiscountThreshold,
		cfg.Property.DiscountPercent,
	)
	if err != nil {
		return nil, err
	}
	return reservation.NewTariffCalculator(tariff), nil
}

func NewReservationFactory(clk clock.Clock, calc reservation.PriceCalculator, settings shared.PropertySettings) *reservation.Factory {
	return reservation.NewFactory(&reservation.Services{
		Clock:           clk,
		PriceCalculator: calc,
		Codes:           reservation.NewRandomCodes(),
	}, settings.Capacity).WithMaxNights(settings.MaxNights)
}

// NewStaffAccounts builds the admin list. Without ADMIN_PASSWORD_HASH no staff login is possible.
func NewStaffAccounts(cfg config.Config) ([]*user.Account, error) {
	if cfg.Admin.PasswordHash == "" {
		slog.Warn("ADMIN_PASSWORD_HASH not set, admin login disabled")
		return nil, nil
	}
	accounts := make([]*user.Account, 0, len(cfg.Admin.Emails)+len(cfg.Admin.SuperEmails))
	add := func(emails []string, role user.Role) error {
		for _, email := range emails {
			a, err := user.NewAccount(email, role, cfg.Admin.PasswordHash)
			if err != nil {
				return err
			}
			accounts = append(accounts, a)
		}
		return nil
	}
	if err := add(cfg.Admin.Emails, user.RoleAdmin); err != nil {
		return nil, err
	}
	if err := add(cfg.Admin.SuperEmails, user.RoleSuperAdmin); err != nil {
		return nil, err
	}
	return accounts, nil
}
