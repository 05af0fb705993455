//go:build unit

package reservation_test

import (
	"testing"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var moneyComparer = cmp.Comparer(func(a, b reservation.Money) bool { return a.Cents() == b.Cents() })

func TestTariffCalculatorQuote(t *testing.T) {
	calc := reservation.NewDefaultPriceCalculator()

	cases := []struct {
		name   string
		nights int
		want   reservation.PriceQuote
	}{
		{
			name:   "no nights is free",
			nights: 0,
			want:   reservation.PriceQuote{NightlyRate: reservation.NewMoney(500_00)},
		},
		{
			name:   "short stay pays cleaning once",
			nights: 3,
			want: reservation.PriceQuote{
				Nights:      3,
				NightlyRate: reservation.NewMoney(500_00),
				Subtotal:    reservation.NewMoney(1500_00),
				CleaningFee: reservation.NewMoney(150_00),
				Total:       reservation.NewMoney(1650_00),
			},
		},
		{
			name:   "six nights stays below the discount",
			nights: 6,
			want: reservation.PriceQuote{
				Nights:      6,
				NightlyRate: reservation.NewMoney(500_00),
				Subtotal:    reservation.NewMoney(3000_00),
				CleaningFee: reservation.NewMoney(150_00),
				Total:       reservation.NewMoney(3150_00),
			},
		},
		{
			name:   "seven nights earns ten percent off the nights",
			nights: 7,
			want: reservation.PriceQuote{
				Nights:          7,
				NightlyRate:     reservation.NewMoney(500_00),
				Subtotal:        reservation.NewMoney(3500_00),
				Discount:        reservation.NewMoney(350_00),
				DiscountApplied: true,
				CleaningFee:     reservation.NewMoney(150_00),
				Total:           reservation.NewMoney(3300_00),
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := calc.Quote(c.nights)
			if diff := cmp.Diff(c.want, got, moneyComparer); diff != "" {
				t.Errorf("Quote mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuoteNeverDecreasesWithNights(t *testing.T) {
	calc := reservation.NewDefaultPriceCalculator()
	prev := calc.Total(1)
	for n := 2; n <= 30; n++ {
		cur := calc.Total(n)
		assert.GreaterOrEqual(t, cur.Cents(), prev.Cents(), "nights=%d", n)
		prev = cur
	}
}

func TestQuoteRange(t *testing.T) {
	calc := reservation.NewDefaultPriceCalculator()
	ci := calendar.MustParse("2026-07-10")
	co := calendar.MustParse("2026-07-13")

	assert.Equal(t, int64(1650_00), reservation.QuoteRange(calc, &ci, &co).Total.Cents())
	assert.True(t, reservation.QuoteRange(calc, &ci, nil).Total.IsZero())
	assert.True(t, reservation.QuoteRange(calc, nil, nil).Total.IsZero())
	assert.True(t, reservation.QuoteRange(calc, &co, &ci).Total.IsZero())
}

func TestNewTariff(t *testing.T) {
	t.Run("custom tariff OK", func(t *testing.T) {
		tariff, err := reservation.NewTariff(reservation.NewMoney(800_00), reservation.NewMoney(200_00), 5, 15)
		require.NoError(t, err)

		q := reservation.NewTariffCalculator(tariff).Quote(5)
		assert.Equal(t, int64(4000_00-600_00+200_00), q.Total.Cents())
	})

	t.Run("discount above 100 percent NG", func(t *testing.T) {
		_, err := reservation.NewTariff(reservation.NewMoney(500_00), reservation.NewMoney(0), 7, 101)
		require.ErrorIs(t, err, reservation.ErrInvalidTariff)
	})

	t.Run("negative rate NG", func(t *testing.T) {
		_, err := reservation.NewTariff(reservation.NewMoney(-1), reservation.NewMoney(0), 7, 10)
		require.ErrorIs(t, err, reservation.ErrInvalidTariff)
	})

	t.Run("discount making the threshold stay cheaper NG", func(t *testing.T) {
		_, err := reservation.NewTariff(reservation.NewMoney(100_00), reservation.NewMoney(0), 2, 60)
		require.ErrorIs(t, err, reservation.ErrNonMonotonicTariff)
	})
}

func TestMoney(t *testing.T) {
	m, err := reservation.NewMoneyFromRand(1650.5)
	require.NoError(t, err)
	assert.Equal(t, int64(165050), m.Cents())
	assert.Equal(t, "R1650.50", m.String())
	assert.InDelta(t, 1650.5, m.Rand(), 0.0001)

	_, err = reservation.NewMoneyFromRand(-1)
	require.ErrorIs(t, err, reservation.ErrNegativeMoney)

	assert.Equal(t, int64(1), reservation.NewMoney(5).Percent(10).Cents())
}
