// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gateway/config"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/domain/service"
	"gateway/internal/errors"
)

// refreshTokenBytes is the entropy of an opaque refresh token (256 bits).
const refreshTokenBytes = 32

// maxExpiry is the latest expiry a NumericDate can carry without losing precision.
var maxExpiry = time.Unix(1<<53-1, 0)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte           // Secret key for signing access tokens.
	now          func() time.Time // Clock, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg.SecretKey.Access, time.Now)
}

func newJWTService(secret string, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, domainerrors.ErrConfig.WrapMessage("jwt secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(secret),
		now:          now,
	}, nil
}

// IssueAccessToken signs an HS256 token whose subject is userID.
func (s *jwtService) IssueAccessToken(userID uuid.UUID, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", domainerrors.ErrConfig.WrapMessage("access token ttl must be positive")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(ttl)
	if expiresAt.Before(issuedAt) || expiresAt.After(maxExpiry) {
		return "", domainerrors.ErrConfig.WrapMessage("access token expiry overflows")
	}

	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),               // Subject (who the token is for)
			IssuedAt:  jwt.NewNumericDate(issuedAt),  // Issued At
			ExpiresAt: jwt.NewNumericDate(expiresAt), // Expiration Time
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// VerifyAccessToken checks signature and expiry and returns the subject.
func (s *jwtService) VerifyAccessToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, domainerrors.NewAuthError(domainerrors.AuthReasonMissing, nil)
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, domainerrors.NewAuthError(classifyJWTError(err), err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domainerrors.NewAuthError(domainerrors.AuthReasonMalformed, err)
	}

	return userID, nil
}

// NewRefreshToken returns a random URL-safe token and its storage hash.
func (s *jwtService) NewRefreshToken() (raw string, hash string, err error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to read random bytes")
	}

	raw = base64.RawURLEncoding.EncodeToString(buf)

	return raw, s.HashToken(raw), nil
}

// HashToken returns the standard base64 SHA-256 digest of raw.
func (s *jwtService) HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return base64.StdEncoding.EncodeToString(sum[:])
}

func classifyJWTError(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.AuthReasonExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return domainerrors.AuthReasonBadSignature
	default:
		return domainerrors.AuthReasonMalformed
	}
}
