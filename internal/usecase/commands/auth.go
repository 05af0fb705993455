package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bluehaven/internal/domain/auth"
	"bluehaven/internal/domain/user"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/pkg/jwt"
	"bluehaven/internal/pkg/password"
	"bluehaven/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrGuestNotFound        = errs.New("guest not found")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	TTL       time.Duration
	Principal user.Principal
}

type AuthCommands interface {
	AdminLogin(ctx context.Context, email, password string) (*LoginResult, error)
	// GuestLogin opens the guest portal for an email that holds at least one
	// booking. A non-empty reference must match one of those bookings.
	GuestLogin(ctx context.Context, email, reference string) (*LoginResult, error)
}

type authCommandsImpl struct {
	accounts   map[string]*user.Account
	store      shared.ReservationStore
	jwtService *jwt.Service
}

func NewAuthCommands(accounts []*user.Account, store shared.ReservationStore, jwtService *jwt.Service) AuthCommands {
	byEmail := make(map[string]*user.Account, len(accounts))
	for _, a := range accounts {
		byEmail[a.Email().Normalized()] = a
	}
	return &authCommandsImpl{
		accounts:   byEmail,
		store:      store,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) AdminLogin(_ context.Context, email, pw string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pw)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	account, ok := a.accounts[credentials.Email().Normalized()]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(account.PasswordHash(), credentials.Password().Value()); err != nil {
		slog.Warn("admin login rejected", "email", credentials.Email().Normalized())
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	return a.issue(user.Principal{Subject: account.Email().Normalized(), Role: account.Role()})
}

func (a *authCommandsImpl) GuestLogin(ctx context.Context, email, reference string) (*LoginResult, error) {
	credentials, err := auth.NewGuestCredentials(email, reference)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	bookings, err := a.store.ListByEmail(ctx, credentials.Email().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(bookings) == 0 {
		return nil, errs.Mark(auth.ErrNoBookingsForGuest, ErrGuestNotFound)
	}
	if credentials.HasReference() {
		matched := false
		for _, b := range bookings {
			if b.ConfirmationCode() == credentials.Reference() || strings.EqualFold(b.ID(), credentials.Reference()) {
				matched = true
				break
			}
		}
		if !matched {
			return nil, ErrInvalidCredentials
		}
	}

	return a.issue(user.Principal{Subject: credentials.Email().Normalized(), Role: user.RoleGuest})
}

func (a *authCommandsImpl) issue(p user.Principal) (*LoginResult, error) {
	token, expiresAt, err := a.jwtService.GenerateToken(p.Subject, p.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		TTL:       a.jwtService.TTL(p.Role),
		Principal: p,
	}, nil
}
