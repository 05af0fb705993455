//go:build unit || e2e

package builder

import (
	reqdto "bluehaven/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email            string
	Password         string
	ConfirmationCode string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:            "owner@bluehaven.example",
		Password:         "password123",
		ConfirmationCode: "ABCD1234",
	}
}

func (a *AuthBuilder) BuildAdminDTO() reqdto.AdminLoginRequest {
	return reqdto.AdminLoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildGuestDTO() reqdto.GuestLoginRequest {
	return reqdto.GuestLoginRequest{
		Email:            a.Email,
		ConfirmationCode: a.ConfirmationCode,
	}
}
