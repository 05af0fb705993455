//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"bluehaven/internal/domain/user"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/config"
	"bluehaven/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject string, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.AdminDuration, h.cfg.GuestDuration, clock.NewRealClock())
	token, _, err := service.GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose lifetime ended an hour ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject string, role user.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-h.cfg.GuestDuration - h.cfg.AdminDuration - time.Hour))
	service := jwt.NewService(h.cfg.Secret, h.cfg.AdminDuration, h.cfg.GuestDuration, past)
	token, _, err := service.GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}
