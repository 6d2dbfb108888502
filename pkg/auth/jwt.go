package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

// JWTValidator validates HS256 bearer tokens whose subject is the caller address.
// Relayer daemons use these instead of signing every request.
type JWTValidator struct {
	secret []byte
	issuer string
}

// NewJWTValidator creates a validator. An empty secret disables bearer tokens.
func NewJWTValidator(secret, issuer string) *JWTValidator {
	return &JWTValidator{secret: []byte(secret), issuer: issuer}
}

// IsConfigured returns true if a signing secret is set
func (v *JWTValidator) IsConfigured() bool {
	return v != nil && len(v.secret) > 0
}

// ValidateToken verifies tokenString and returns the address in its subject.
func (v *JWTValidator) ValidateToken(tokenString string) (common.Address, error) {
	if !v.IsConfigured() {
		return common.Address{}, errors.New("bearer tokens not enabled")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return common.Address{}, errors.New("invalid token")
	}

	return ParseAddress(claims.Subject)
}

// IssueToken signs a token for subject valid for ttl.
func (v *JWTValidator) IssueToken(subject common.Address, ttl time.Duration) (string, error) {
	if !v.IsConfigured() {
		return "", errors.New("bearer tokens not enabled")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject.Hex(),
		Issuer:    v.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
