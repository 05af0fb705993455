//go:build unit || e2e

package builder

import (
	"bluehaven/internal/domain/user"
)

type AccountBuilder struct {
	Email        string
	Role         user.Role
	PasswordHash string
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		Email:        "owner@bluehaven.example",
		Role:         user.RoleAdmin,
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoO5uFQ9bY1Jv8e8Jx0hVdGmW6kZyq2bW.",
	}
}

func (a *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(a)
	return a
}

func (a *AccountBuilder) BuildDomain() (*user.Account, error) {
	return user.NewAccount(a.Email, a.Role, a.PasswordHash)
}

func (a *AccountBuilder) WithEmail(email string) *AccountBuilder {
	a.Email = email
	return a
}

func (a *AccountBuilder) WithRole(role user.Role) *AccountBuilder {
	a.Role = role
	return a
}

func (a *AccountBuilder) WithPasswordHash(hash string) *AccountBuilder {
	a.PasswordHash = hash
	return a
}

func (a *AccountBuilder) AsSuperAdmin() *AccountBuilder {
	a.Role = user.RoleSuperAdmin
	return a
}
