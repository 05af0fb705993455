package reservation

import (
	"errors"

	"bluehaven/internal/domain/calendar"
)

var (
	ErrInvalidTariff      = errors.New("tariff amounts must be non-negative and the discount between 0 and 100 percent")
	ErrNonMonotonicTariff = errors.New("long-stay discount would make the threshold stay cheaper than a shorter one")
)

// Tariff holds the property's pricing parameters.
type Tariff struct {
	NightlyRate       Money
	CleaningFee       Money
	DiscountThreshold int
	DiscountPercent   float64
}

func DefaultTariff() Tariff {
	return Tariff{
		NightlyRate:       NewMoney(500_00),
		CleaningFee:       NewMoney(150_00),
		DiscountThreshold: 7,
		DiscountPercent:   10,
	}
}

// NewTariff rejects parameters under which a longer stay could cost less than a shorter one.
func NewTariff(nightly, cleaning Money, threshold int, percent float64) (Tariff, error) {
	if nightly.Cents() < 0 || cleaning.Cents() < 0 || threshold < 0 || percent < 0 || percent > 100 {
		return Tariff{}, ErrInvalidTariff
	}
	if threshold > 0 && percent > 0 {
		below := nightly.Times(threshold - 1)
		at := nightly.Times(threshold)
		if at.Sub(at.Percent(percent)).Cents() < below.Cents() {
			return Tariff{}, ErrNonMonotonicTariff
		}
	}
	return Tariff{
		NightlyRate:       nightly,
		CleaningFee:       cleaning,
		DiscountThreshold: threshold,
		DiscountPercent:   percent,
	}, nil
}

type PriceQuote struct {
	Nights          int
	NightlyRate     Money
	Subtotal        Money
	Discount        Money
	DiscountApplied bool
	CleaningFee     Money
	Total           Money
}

type PriceCalculator interface {
	Quote(nights int) PriceQuote
}

type TariffCalculator struct {
	tariff Tariff
}

func NewTariffCalculator(t Tariff) *TariffCalculator {
	return &TariffCalculator{tariff: t}
}

func NewDefaultPriceCalculator() *TariffCalculator {
	return NewTariffCalculator(DefaultTariff())
}

func (c *TariffCalculator) Tariff() Tariff { return c.tariff }

// Quote prices a stay. The discount applies to the nightly subtotal only and
// the cleaning fee is charged once when nights > 0.
func (c *TariffCalculator) Quote(nights int) PriceQuote {
	q := PriceQuote{NightlyRate: c.tariff.NightlyRate}
	if nights <= 0 {
		return q
	}
	q.Nights = nights
	q.Subtotal = c.tariff.NightlyRate.Times(nights)
	if c.tariff.DiscountThreshold > 0 && nights >= c.tariff.DiscountThreshold {
		q.Discount = q.Subtotal.Percent(c.tariff.DiscountPercent)
		q.DiscountApplied = q.Discount.Cents() > 0
	}
	q.CleaningFee = c.tariff.CleaningFee
	q.Total = q.Subtotal.Sub(q.Discount).Add(q.CleaningFee)
	return q
}

func (c *TariffCalculator) Total(nights int) Money {
	return c.Quote(nights).Total
}

// QuoteRange prices an optional selection. Missing or inverted dates give the zero quote.
func QuoteRange(calc PriceCalculator, checkIn, checkOut *calendar.Date) PriceQuote {
	if checkIn == nil || checkOut == nil || checkIn.IsZero() || checkOut.IsZero() {
		return calc.Quote(0)
	}
	return calc.Quote(calendar.DaysBetween(*checkIn, *checkOut))
}
