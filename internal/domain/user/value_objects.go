package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrInvalidRole    = errors.New("invalid role")
	ErrEmptyPassword  = errors.New("password is required")
	ErrMissingAccount = errors.New("account email and password hash are required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

// ReconstructEmail wraps a stored address without re-validating it.
func ReconstructEmail(s string) Email {
	return Email{value: strings.TrimSpace(s)}
}

func (e Email) Value() string {
	return e.value
}

// Normalized is the lower-cased address used for lookups.
func (e Email) Normalized() string {
	return strings.ToLower(e.value)
}

func (e Email) Matches(other string) bool {
	return strings.EqualFold(e.value, strings.TrimSpace(other))
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrEmptyPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
