//go:build unit

package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"bluehaven/internal/domain/payment"
	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/infra"
	"bluehaven/internal/infra/filestore"
	"bluehaven/internal/pkg/clock"
	"bluehaven/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	dir   string
	clock *clock.MockClock
	store *filestore.Store
	ctx   context.Context
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.clock = clock.NewMockClock(time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC))
	s.store = filestore.New(s.dir, "bluehaven", reservation.OccupancyConfirmedAndPending, s.clock, nil)
	s.ctx = context.Background()
}

func (s *StoreTestSuite) TestEmptyDirectoryReadsAsNoBookings() {
	got, err := s.store.Reservations().List(s.ctx)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *StoreTestSuite) TestAppendAndReadBack() {
	rs := s.store.Reservations()
	first := builder.NewReservationBuilder().WithID("BHFIRST001").With(func(b *builder.ReservationBuilder) {
		b.ConfirmationCode = "FIRST001"
	}).MustBuild()
	second := builder.NewReservationBuilder().WithID("BHSECOND01").WithDates("2026-08-01", "2026-08-04").With(func(b *builder.ReservationBuilder) {
		b.ConfirmationCode = "SECOND01"
		b.Email = "Other@Example.com"
		b.CreatedAt = b.CreatedAt.Add(time.Hour)
	}).MustBuild()

	s.Require().NoError(rs.Append(s.ctx, first))
	s.Require().NoError(rs.Append(s.ctx, second))

	s.Run("list is newest first", func() {
		got, err := rs.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal("BHSECOND01", got[0].ID())
		s.Equal(first.Record(), got[1].Record())
	})

	s.Run("email lookup ignores case", func() {
		got, err := rs.ListByEmail(s.ctx, "other@example.com")
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal("BHSECOND01", got[0].ID())
	})

	s.Run("confirmation code lookup", func() {
		got, err := rs.FindByConfirmationCode(s.ctx, " first001 ")
		s.Require().NoError(err)
		s.Equal("BHFIRST001", got.ID())
	})

	s.Run("missing id", func() {
		_, err := rs.FindByID(s.ctx, "BHNOPE0001")
		s.True(infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("file is a JSON array on disk", func() {
		raw, err := os.ReadFile(filepath.Join(s.dir, "bluehaven_bookings.json"))
		s.Require().NoError(err)
		s.Contains(string(raw), `"confirmationCode": "FIRST001"`)
	})
}

func (s *StoreTestSuite) TestAppendRejectsOverlapsAndDuplicates() {
	rs := s.store.Reservations()
	s.Require().NoError(rs.Append(s.ctx, builder.NewReservationBuilder().AsConfirmed().MustBuild()))

	testCases := []struct {
		name     string
		incoming *builder.ReservationBuilder
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "overlapping nights",
			incoming: builder.NewReservationBuilder().WithID("BHOVER0001").WithDates("2026-07-12", "2026-07-15").With(func(b *builder.ReservationBuilder) { b.ConfirmationCode = "OVER0001" }),
			wantKind: infra.KindConflict,
		},
		{
			name:     "same id",
			incoming: builder.NewReservationBuilder().WithDates("2026-09-01", "2026-09-03").With(func(b *builder.ReservationBuilder) { b.ConfirmationCode = "OTHER001" }),
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "same confirmation code",
			incoming: builder.NewReservationBuilder().WithID("BHCODE0001").WithDates("2026-09-01", "2026-09-03"),
			wantKind: infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := rs.Append(s.ctx, tc.incoming.MustBuild())
			s.True(infra.IsKind(err, tc.wantKind), "got %v", err)
		})
	}

	s.Run("back-to-back stay is accepted", func() {
		next := builder.NewReservationBuilder().WithID("BHNEXT0001").WithDates("2026-07-13", "2026-07-15").With(func(b *builder.ReservationBuilder) { b.ConfirmationCode = "NEXT0001" })
		s.NoError(rs.Append(s.ctx, next.MustBuild()))
	})

	s.Run("overlap with a cancelled stay is accepted", func() {
		cancelled := builder.NewReservationBuilder().WithID("BHCANC0001").WithDates("2026-08-10", "2026-08-12").AsCancelled().With(func(b *builder.ReservationBuilder) { b.ConfirmationCode = "CANC0001" })
		s.Require().NoError(rs.Append(s.ctx, cancelled.MustBuild()))
		again := builder.NewReservationBuilder().WithID("BHAGAIN001").WithDates("2026-08-10", "2026-08-12").With(func(b *builder.ReservationBuilder) { b.ConfirmationCode = "AGAIN001" })
		s.NoError(rs.Append(s.ctx, again.MustBuild()))
	})
}

func (s *StoreTestSuite) TestConcurrentAppendsClaimNightsOnce() {
	rs := s.store.Reservations()
	const attempts = 8

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.ID = "BHRACE000" + string(rune('0'+i))
				b.ConfirmationCode = "RACE000" + string(rune('0'+i))
			}).MustBuild()
			results[i] = rs.Append(s.ctx, r)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.True(infra.IsKind(err, infra.KindConflict), "got %v", err)
	}
	s.Equal(1, succeeded)
}

func (s *StoreTestSuite) TestUpdateStatus() {
	rs := s.store.Reservations()
	stay := builder.NewReservationBuilder()
	s.Require().NoError(rs.Append(s.ctx, stay.MustBuild()))
	s.clock.Add(time.Hour)

	paid := reservation.PaymentPaid
	s.Require().NoError(rs.UpdateStatus(s.ctx, stay.ID, reservation.StatusConfirmed, &paid))

	got, err := rs.FindByID(s.ctx, stay.ID)
	s.Require().NoError(err)
	s.Equal(reservation.StatusConfirmed, got.Status())
	s.Equal(reservation.PaymentPaid, got.PaymentStatus())
	s.Equal(s.clock.Now(), got.UpdatedAt())

	err = rs.UpdateStatus(s.ctx, "BHNOPE0001", reservation.StatusCancelled, nil)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *StoreTestSuite) TestClearEmptiesEveryDocument() {
	stay := builder.NewReservationBuilder().AsConfirmed()
	s.Require().NoError(s.store.Reservations().Append(s.ctx, stay.MustBuild()))
	p, err := payment.NewPayment(stay.ID, mustMethod(s.T(), payment.MethodEFT), stay.TotalCents, s.clock.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.store.Payments().Append(s.ctx, p))
	rv, err := builder.NewReviewBuilder().BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.store.Reviews().Append(s.ctx, rv))

	n, err := s.store.Reservations().Clear(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, n)
	bookings, _ := s.store.Reservations().List(s.ctx)
	payments, _ := s.store.Payments().ListByReservation(s.ctx, stay.ID)
	reviews, _ := s.store.Reviews().List(s.ctx)
	s.Empty(bookings)
	s.Empty(payments)
	s.Empty(reviews)
}

func (s *StoreTestSuite) TestPaymentsAndReviews() {
	ps := s.store.Payments()
	p, err := payment.NewPayment("BHTEST0001", mustMethod(s.T(), payment.MethodYoco), 1650_00, s.clock.Now())
	s.Require().NoError(err)
	p.Apply(payment.Outcome{Status: payment.StatusSuccess, TransactionID: "YOCO-42"})
	s.Require().NoError(ps.Append(s.ctx, p))
	s.True(infra.IsKind(ps.Append(s.ctx, p), infra.KindDuplicateKey), "same reference twice")

	got, err := ps.ListByReservation(s.ctx, "BHTEST0001")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(p.Record(), got[0].Record())

	rvs := s.store.Reviews()
	rv, err := builder.NewReviewBuilder().BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(rvs.Append(s.ctx, rv))
	s.True(infra.IsKind(rvs.Append(s.ctx, rv), infra.KindDuplicateKey), "one review per stay")

	found, err := rvs.FindByReservation(s.ctx, "BHTEST0001")
	s.Require().NoError(err)
	s.Equal(rv.ID(), found.ID())

	_, err = rvs.FindByReservation(s.ctx, "BHOTHER001")
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *StoreTestSuite) TestCorruptDocumentIsAnIOFailure() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "bluehaven_bookings.json"), []byte("{not json"), 0o600))

	_, err := s.store.Reservations().List(s.ctx)
	s.True(infra.IsKind(err, infra.KindIOFailure), "got %v", err)
}

func TestStore_CancelledContext(t *testing.T) {
	store := filestore.New(t.TempDir(), "bluehaven", reservation.OccupancyConfirmedAndPending, clock.NewMockClock(time.Now()), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Reservations().Append(ctx, builder.NewReservationBuilder().MustBuild())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_AppendFollowsOccupancyPolicy(t *testing.T) {
	tests := []struct {
		name         string
		policy       reservation.OccupancyPolicy
		wantBlocked  int
		wantConflict bool
	}{
		{name: "pending stays hold nights", policy: reservation.OccupancyConfirmedAndPending, wantBlocked: 3, wantConflict: true},
		{name: "only confirmed stays hold nights", policy: reservation.OccupancyConfirmedOnly, wantBlocked: 0, wantConflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			rs := filestore.New(t.TempDir(), "bluehaven", tt.policy, clock.NewMockClock(time.Now()), nil).Reservations()
			require.NoError(t, rs.Append(ctx, builder.NewReservationBuilder().MustBuild()))

			existing, err := rs.List(ctx)
			require.NoError(t, err)
			blocked := reservation.ExpandBlockedDates(existing, tt.policy)
			assert.Equal(t, tt.wantBlocked, blocked.Len())

			incoming := builder.NewReservationBuilder().WithID("BHINNER001").WithDates("2026-07-11", "2026-07-12").With(func(b *builder.ReservationBuilder) {
				b.ConfirmationCode = "INNER001"
			}).MustBuild()
			err = rs.Append(ctx, incoming)
			if tt.wantConflict {
				assert.True(t, infra.IsKind(err, infra.KindConflict), "got %v", err)
				return
			}
			assert.NoError(t, err, "nights the calendar shows as free must be bookable")
		})
	}
}

func TestStore_ConfirmingRespectsOccupancyPolicy(t *testing.T) {
	ctx := context.Background()
	rs := filestore.New(t.TempDir(), "bluehaven", reservation.OccupancyConfirmedOnly, clock.NewMockClock(time.Now()), nil).Reservations()
	first := builder.NewReservationBuilder().MustBuild()
	second := builder.NewReservationBuilder().WithID("BHINNER001").WithDates("2026-07-11", "2026-07-12").With(func(b *builder.ReservationBuilder) {
		b.ConfirmationCode = "INNER001"
	}).MustBuild()
	require.NoError(t, rs.Append(ctx, first))
	require.NoError(t, rs.Append(ctx, second))

	require.NoError(t, rs.UpdateStatus(ctx, second.ID(), reservation.StatusConfirmed, nil))
	require.NoError(t, rs.UpdateStatus(ctx, second.ID(), reservation.StatusConfirmed, nil), "a stay never conflicts with itself")

	err := rs.UpdateStatus(ctx, first.ID(), reservation.StatusConfirmed, nil)
	assert.True(t, infra.IsKind(err, infra.KindConflict), "got %v", err)

	require.NoError(t, rs.UpdateStatus(ctx, first.ID(), reservation.StatusCancelled, nil))
}

func mustMethod(t *testing.T, id payment.MethodID) payment.Method {
	t.Helper()
	m, err := payment.LookupMethod(string(id))
	require.NoError(t, err)
	return m
}

