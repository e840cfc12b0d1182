// Package auth issues and verifies the signed session tokens that gate
// mutating catalog operations.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is the validity window of an issued token.
const DefaultTTL = 24 * time.Hour

// Claims is the payload of a session token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// User returns the identity carried by the claims.
func (c *Claims) User() User {
	return User{Username: c.Username, Role: c.Role}
}

// Token is the result of a successful login.
type Token struct {
	Value     string
	ExpiresAt time.Time
	User      User
}

// TokenService signs and verifies HS256 session tokens.
type TokenService struct {
	creds   CredentialChecker
	signKey []byte
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a TokenService.
type Option func(*TokenService)

// WithClock overrides the clock used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService constructs a TokenService. A non-positive ttl falls back to DefaultTTL.
func NewTokenService(creds CredentialChecker, signKey []byte, ttl time.Duration, opts ...Option) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &TokenService{creds: creds, signKey: signKey, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL returns the validity window of issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue checks the credentials and returns a signed token for the user.
func (s *TokenService) Issue(username, password string) (Token, error) {
	u, err := s.creds.Check(username, password)
	if err != nil {
		return Token{}, err
	}

	now := s.now()
	exp := now.Add(s.ttl)
	claims := Claims{
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}
	return Token{Value: signed, ExpiresAt: exp, User: u}, nil
}

// Verify validates signature, algorithm and expiry and returns the claims.
// Failures wrap ErrInvalidToken with a short reason.
func (s *TokenService) Verify(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, reason(err))
	}
	return &claims, nil
}

func reason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "token malformed"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid signature"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return "token unverifiable"
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return "token is missing required claims"
	default:
		return err.Error()
	}
}
