package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"delivery-api/internal/model"
)

const AccessTokenType = "access"

type accessClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HMAC-signed access tokens. The secret and
// algorithm are fixed for the life of the process.
type TokenService struct {
	secret    []byte
	method    *jwt.SigningMethodHMAC
	accessTTL time.Duration
	now       func() time.Time
}

func NewTokenService(secret string, algorithm string, accessTTL time.Duration) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token secret is required")
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported token algorithm %q: an HMAC algorithm is required", algorithm)
	}

	if accessTTL <= 0 {
		return nil, errors.New("access token lifetime must be positive")
	}

	return &TokenService{
		secret:    []byte(secret),
		method:    method,
		accessTTL: accessTTL,
		now:       time.Now,
	}, nil
}

func (s *TokenService) Issue(subject string) (string, error) {
	claims := accessClaims{
		Type: AccessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(s.now().UTC().Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return signed, nil
}

// Verify checks signature, algorithm and expiry in one parse. The returned
// error wraps model.ErrExpiredToken when only the expiry failed and
// model.ErrInvalidToken for everything else.
func (s *TokenService) Verify(tokenString string) (model.TokenPayload, error) {
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.TokenPayload{}, fmt.Errorf("%w: %w", model.ErrExpiredToken, err)
		}
		return model.TokenPayload{}, fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}

	if claims.Type != AccessTokenType {
		return model.TokenPayload{}, fmt.Errorf("%w: unexpected token type %q", model.ErrInvalidToken, claims.Type)
	}
	if claims.Subject == "" {
		return model.TokenPayload{}, fmt.Errorf("%w: missing subject", model.ErrInvalidToken)
	}

	return model.TokenPayload{
		Type:      claims.Type,
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *TokenService) keyFunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != s.method.Alg() {
		return nil, fmt.Errorf("unexpected signing method %s", token.Method.Alg())
	}
	return s.secret, nil
}
