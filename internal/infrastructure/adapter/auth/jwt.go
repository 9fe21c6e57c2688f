package auth

import (
	"errors"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned when a session token cannot be trusted
var ErrInvalidToken = fmt.Errorf("%w: invalid session token", errs.ErrAuthenticationFailure)

// Claims carried by a session token
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens
type TokenService struct {
	secret       []byte
	ttl          time.Duration
	timeProvider core.TimeProvider
}

// NewTokenService creates a TokenService signing with secret
func NewTokenService(secret string, ttl time.Duration, timeProvider core.TimeProvider) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &TokenService{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// TTL returns how long issued tokens stay valid
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed token for username
func (s *TokenService) Issue(username string) (string, error) {
	now := s.timeProvider.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse verifies tokenString and returns the username it was issued for
func (s *TokenService) Parse(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Username == "" {
		return "", ErrInvalidToken
	}

	return claims.Username, nil
}
