package auth

import (
	"errors"
	"strings"

	"bluehaven/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoBookingsForGuest = errors.New("no bookings found for this email")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// GuestCredentials identify a guest by booking email, optionally narrowed
// to one reservation by its confirmation code or id.
type GuestCredentials struct {
	email     user.Email
	reference string
}

func NewGuestCredentials(emailStr, reference string) (GuestCredentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return GuestCredentials{}, err
	}
	return GuestCredentials{email: email, reference: strings.ToUpper(strings.TrimSpace(reference))}, nil
}

func (g GuestCredentials) Email() user.Email { return g.email }
func (g GuestCredentials) Reference() string { return g.reference }
func (g GuestCredentials) HasReference() bool {
	return g.reference != ""
}
