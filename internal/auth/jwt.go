// Package auth issues and verifies account access tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Audience is the aud claim of every registry access token.
const Audience = "bullion-registry-api"

// JWTManager signs and verifies HS256 access tokens. The subject is the
// caller's account ID; the registry keeps no account table of its own.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// IssuedToken is a signed token and the claims a caller may want to show.
type IssuedToken struct {
	Token     string
	AccountID uuid.UUID
	ExpiresAt time.Time
}

// NewJWTManager creates a JWTManager. secret should be at least 32 bytes.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// Issue signs an access token for accountID valid for the configured TTL.
func (m *JWTManager) Issue(accountID uuid.UUID) (IssuedToken, error) {
	if accountID == uuid.Nil {
		return IssuedToken{}, errors.New("account id is nil")
	}

	now := m.now()
	expires := now.Add(m.accessTTL)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   accountID.String(),
		Issuer:    m.issuer,
		Audience:  jwt.ClaimStrings{Audience},
		ExpiresAt: jwt.NewNumericDate(expires),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return IssuedToken{}, fmt.Errorf("sign token: %w", err)
	}
	return IssuedToken{Token: signed, AccountID: accountID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// GenerateAccessToken is Issue returning only the signed string.
func (m *JWTManager) GenerateAccessToken(accountID uuid.UUID) (string, error) {
	t, err := m.Issue(accountID)
	return t.Token, err
}

// ValidateAccessToken verifies signature, issuer, audience and expiry and
// returns the account ID the token was issued for. Failures wrap the
// jwt/v5 sentinel errors (jwt.ErrTokenExpired and friends).
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, errors.New("token is empty")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject: %w", err)
	}
	if accountID == uuid.Nil {
		return uuid.Nil, errors.New("invalid subject: nil account")
	}
	return accountID, nil
}

// ValidateToken adapts ValidateAccessToken to the HTTP auth middleware.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	return m.ValidateAccessToken(token)
}
