package gateway

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"bluehaven/internal/domain/payment"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/config"
	"bluehaven/internal/usecase/shared"
)

// BankDetails are printed on EFT instructions.
type BankDetails struct {
	AccountHolder string
	BankName      string
	AccountNumber string
	BranchCode    string
}

// Simulated stands in for the South African providers. Each method answers
// after its catalog latency; charges above the decline threshold fail.
type Simulated struct {
	cfg          config.PaymentConfig
	bank         BankDetails
	contactPhone string
	clock        clock.Clock
	sleep        func(ctx context.Context, d time.Duration) error
}

func NewSimulated(cfg config.PaymentConfig, bank BankDetails, contactPhone string, clk clock.Clock) *Simulated {
	return &Simulated{
		cfg:          cfg,
		bank:         bank,
		contactPhone: contactPhone,
		clock:        clk,
		sleep:        sleepCtx,
	}
}

func (g *Simulated) Charge(ctx context.Context, req shared.ChargeRequest) (payment.Outcome, error) {
	if g.cfg.SimulateLatency {
		if err := g.sleep(ctx, req.Method.Latency); err != nil {
			return payment.Outcome{}, err
		}
	}

	if g.cfg.DeclineAboveCents > 0 && req.TotalCents > g.cfg.DeclineAboveCents {
		return payment.Outcome{
			Status:  payment.StatusFailed,
			Message: "Payment declined by provider",
		}, nil
	}

	stamp := strconv.FormatInt(g.clock.Now().UnixMilli(), 10)
	switch req.Method.ID {
	case payment.MethodPayFast:
		return payment.Outcome{
			Status:        payment.StatusSuccess,
			TransactionID: "PF" + stamp,
			RedirectURL:   g.cfg.PayFastURL + "?ref=" + req.Reference,
			Message:       "Payment processed successfully",
		}, nil
	case payment.MethodYoco:
		return payment.Outcome{
			Status:        payment.StatusSuccess,
			TransactionID: "YC" + stamp,
			Message:       "Payment processed successfully",
		}, nil
	case payment.MethodEFT:
		return payment.Outcome{
			Status:       payment.StatusPending,
			Instructions: g.eftInstructions(req),
			Message:      "EFT payment details generated. Please complete the transfer and send proof of payment.",
		}, nil
	case payment.MethodCash:
		return payment.Outcome{
			Status:       payment.StatusPending,
			Instructions: fmt.Sprintf("Please bring exact cash amount. Contact us on %s 24 hours before arrival to confirm payment method.", g.contactPhone),
			Message:      "Cash payment confirmed. Please bring exact amount on arrival.",
		}, nil
	default:
		return payment.Outcome{}, payment.ErrUnknownMethod
	}
}

func (g *Simulated) eftInstructions(req shared.ChargeRequest) string {
	return fmt.Sprintf("Bank: %s\nAccount holder: %s\nAccount number: %s\nBranch code: %s\nReference: %s\nAmount: R%d.%02d",
		g.bank.BankName, g.bank.AccountHolder, g.bank.AccountNumber, g.bank.BranchCode,
		req.Reference, req.TotalCents/100, req.TotalCents%100)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
