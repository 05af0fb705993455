//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/domain/user"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/pkg/jwt"
	"bluehaven/internal/pkg/password"
	"bluehaven/internal/usecase/commands"
	"bluehaven/tests/common/builder"
	sharedmock "bluehaven/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminTTL = 8 * time.Hour
	guestTTL = 24 * time.Hour
)

func newAuthCommands(t *testing.T, store *sharedmock.MockReservationStore) (commands.AuthCommands, *jwt.Service) {
	t.Helper()
	hash, err := password.HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)

	owner, err := builder.NewAccountBuilder().WithPasswordHash(hash).BuildDomain()
	require.NoError(t, err)
	super, err := builder.NewAccountBuilder().WithEmail("admin@bluehaven.example").AsSuperAdmin().WithPasswordHash(hash).BuildDomain()
	require.NoError(t, err)

	svc := jwt.NewService("test-secret", adminTTL, guestTTL, clock.NewMockClock(fixedNow))
	return commands.NewAuthCommands([]*user.Account{owner, super}, store, svc), svc
}

func TestAuthCommands_AdminLogin(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		email    string
		password string
		wantRole user.Role
		wantIs   error
	}{
		{name: "success: owner", email: "owner@bluehaven.example", password: "password123", wantRole: user.RoleAdmin},
		{name: "success: email is case-insensitive", email: " Owner@BlueHaven.example ", password: "password123", wantRole: user.RoleAdmin},
		{name: "success: super admin", email: "admin@bluehaven.example", password: "password123", wantRole: user.RoleSuperAdmin},
		{name: "error: wrong password", email: "owner@bluehaven.example", password: "password124", wantIs: commands.ErrInvalidCredentials},
		{name: "error: unknown account", email: "guest@example.com", password: "password123", wantIs: commands.ErrInvalidCredentials},
		{name: "error: malformed email", email: "not-an-email", password: "password123", wantIs: commands.ErrAuthenticationFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc, svc := newAuthCommands(t, sharedmock.NewMockReservationStore(ctrl))

			result, err := uc.AdminLogin(ctx, tc.email, tc.password)

			if tc.wantIs != nil {
				require.Nil(t, result)
				assert.True(t, errs.Is(err, tc.wantIs), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRole, result.Principal.Role)
			assert.Equal(t, adminTTL, result.TTL)
			assert.Equal(t, fixedNow.Add(adminTTL), result.ExpiresAt)

			claims, err := svc.ValidateToken(result.Token)
			require.NoError(t, err)
			assert.Equal(t, result.Principal.Subject, claims.Subject)
			assert.Equal(t, tc.wantRole.String(), claims.Role)
		})
	}
}

func TestAuthCommands_GuestLogin(t *testing.T) {
	ctx := context.Background()
	bookings := []*reservation.Reservation{builder.NewReservationBuilder().MustBuild()}

	testCases := []struct {
		name      string
		reference string
		found     []*reservation.Reservation
		wantIs    error
	}{
		{name: "success: email only", reference: "", found: bookings},
		{name: "success: confirmation code", reference: "abcd1234", found: bookings},
		{name: "success: reservation id", reference: "bhtest0001", found: bookings},
		{name: "error: reference from another booking", reference: "ZZZZ9999", found: bookings, wantIs: commands.ErrInvalidCredentials},
		{name: "error: no bookings for the email", reference: "", found: nil, wantIs: commands.ErrGuestNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := sharedmock.NewMockReservationStore(ctrl)
			store.EXPECT().ListByEmail(ctx, "thandi@example.com").Return(tc.found, nil)
			uc, _ := newAuthCommands(t, store)

			result, err := uc.GuestLogin(ctx, "thandi@example.com", tc.reference)

			if tc.wantIs != nil {
				require.Nil(t, result)
				assert.True(t, errs.Is(err, tc.wantIs), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.RoleGuest, result.Principal.Role)
			assert.Equal(t, "thandi@example.com", result.Principal.Subject)
			assert.Equal(t, guestTTL, result.TTL)
		})
	}

	t.Run("error: store unreadable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockReservationStore(ctrl)
		store.EXPECT().ListByEmail(ctx, gomock.Any()).Return(nil, errDB)
		uc, _ := newAuthCommands(t, store)

		_, err := uc.GuestLogin(ctx, "thandi@example.com", "")
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}
