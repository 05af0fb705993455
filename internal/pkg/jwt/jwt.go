package jwt

import (
	"errors"
	"time"

	"bluehaven/internal/domain/user"
	"bluehaven/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const issuer = "bluehaven"

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	ttl       map[user.Role]time.Duration
	clock     clock.Clock
}

// NewService signs staff tokens for adminTTL and guest tokens for guestTTL.
func NewService(secretKey string, adminTTL, guestTTL time.Duration, clk clock.Clock) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		ttl: map[user.Role]time.Duration{
			user.RoleGuest:      guestTTL,
			user.RoleAdmin:      adminTTL,
			user.RoleSuperAdmin: adminTTL,
		},
		clock: clk,
	}
}

func (s *Service) TTL(role user.Role) time.Duration {
	return s.ttl[role]
}

// GenerateToken issues a token whose subject is the principal's email.
func (s *Service) GenerateToken(subject string, role user.Role) (string, time.Time, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.ttl[role])
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.clock.Now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
