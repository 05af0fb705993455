package user

import "strings"

// Account is a staff login configured for the property.
type Account struct {
	email        Email
	passwordHash string
	role         Role
}

func NewAccount(email string, role Role, passwordHash string) (*Account, error) {
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	if !role.IsStaff() {
		return nil, ErrInvalidRole
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, ErrMissingAccount
	}
	return &Account{email: e, passwordHash: passwordHash, role: role}, nil
}

func (a *Account) Email() Email         { return a.email }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Role() Role           { return a.role }

// Principal is an authenticated caller: a staff email or a guest email.
type Principal struct {
	Subject string
	Role    Role
}

func (p Principal) IsZero() bool { return p.Subject == "" }
