package bootstrap

import (
	"bluehaven/internal/infra/gateway"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/config"
	"bluehaven/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config, clk clock.Clock) shared.PaymentGateway {
	bank := gateway.BankDetails{
		AccountHolder: cfg.Property.Name,
		BankName:      cfg.Property.BankName,
		AccountNumber: cfg.Property.BankAccount,
		BranchCode:    cfg.Property.BankBranchCode,
	}
	return gateway.NewSimulated(cfg.Payment, bank, cfg.Property.ContactPhone, clk)
}
