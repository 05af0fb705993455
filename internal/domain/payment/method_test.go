//go:build unit

package payment_test

import (
	"strings"
	"testing"
	"time"

	"bluehaven/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethods(t *testing.T) {
	methods := payment.Methods()
	require.Len(t, methods, 4)

	ids := make([]payment.MethodID, 0, len(methods))
	for _, m := range methods {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []payment.MethodID{payment.MethodPayFast, payment.MethodYoco, payment.MethodEFT, payment.MethodCash}, ids)

	methods[0].FeePercent = 99
	again, err := payment.LookupMethod("payfast")
	require.NoError(t, err)
	assert.InDelta(t, 3.5, again.FeePercent, 0.0001)
}

func TestMethodFee(t *testing.T) {
	cases := []struct {
		id      string
		amount  int64
		fee     int64
		settles bool
	}{
		{"payfast", 1650_00, 5775, true},
		{"yoco", 1650_00, 4785, true},
		{"eft", 1650_00, 0, false},
		{"cash", 1650_00, 0, false},
	}
	for _, c := range cases {
		t.Run(c.id, func(t *testing.T) {
			m, err := payment.LookupMethod(c.id)
			require.NoError(t, err)
			assert.Equal(t, c.fee, m.Fee(c.amount))
			assert.Equal(t, c.settles, m.Settles())
		})
	}

	_, err := payment.LookupMethod("bitcoin")
	require.ErrorIs(t, err, payment.ErrUnknownMethod)
}

func TestNewPayment(t *testing.T) {
	now := time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)
	yoco, _ := payment.LookupMethod("yoco")

	t.Run("basic success", func(t *testing.T) {
		p, err := payment.NewPayment("BHTEST0001", yoco, 1650_00, now)
		require.NoError(t, err)

		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, int64(1650_00+4785), p.TotalPaidCents())
		assert.True(t, strings.HasPrefix(p.Reference(), "BH"))

		p.Apply(payment.Outcome{Status: payment.StatusSuccess, TransactionID: "TX1"})
		assert.Equal(t, payment.StatusSuccess, p.Status())
		assert.Equal(t, "TX1", p.TransactionID())

		back, err := payment.Reconstruct(p.Record())
		require.NoError(t, err)
		assert.Equal(t, p.Record(), back.Record())
	})

	t.Run("zero amount NG", func(t *testing.T) {
		_, err := payment.NewPayment("BHTEST0001", yoco, 0, now)
		require.ErrorIs(t, err, payment.ErrNonPositiveAmount)
	})

	t.Run("stored status must be known", func(t *testing.T) {
		_, err := payment.Reconstruct(payment.Record{Status: "settled"})
		require.ErrorIs(t, err, payment.ErrInvalidStatus)
	})
}
