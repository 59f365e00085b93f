package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"url_shortener/internal/shared/apperr"
)

// DefaultAlgorithm is the signing algorithm used when none is configured.
const DefaultAlgorithm = "HS256"

// ErrInvalidToken is returned for tokens that are malformed, badly signed,
// expired, or missing the subject claim.
var ErrInvalidToken = apperr.New(apperr.ErrAuthentication, "Could not validate credentials.")

// TokenService issues and validates HMAC-signed access tokens whose subject
// is the username. Tokens cannot be revoked before they expire.
type TokenService struct {
	secret     []byte
	method     jwt.SigningMethod
	expiration time.Duration
	now        func() time.Time
}

// NewTokenService creates a TokenService for the given symmetric key.
// algorithm must be one of HS256, HS384 or HS512; empty selects DefaultAlgorithm.
func NewTokenService(secret, algorithm string, expiration time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if expiration <= 0 {
		return nil, fmt.Errorf("token expiration must be positive, got %v", expiration)
	}

	return &TokenService{
		secret:     []byte(secret),
		method:     method,
		expiration: expiration,
		now:        time.Now,
	}, nil
}

// GenerateToken creates a signed token for username with the default lifetime.
func (s *TokenService) GenerateToken(username string) (string, error) {
	return s.GenerateTokenWithTTL(username, s.expiration)
}

// GenerateTokenWithTTL creates a signed token for username expiring after ttl.
func (s *TokenService) GenerateTokenWithTTL(username string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies tokenStr and returns its subject.
// Any failure is reported as ErrInvalidToken wrapping the parser's reason.
func (s *TokenService) ParseToken(tokenStr string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenStr, &claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}
