package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"gateway/config"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestService(t *testing.T, clock *fakeClock) *jwtService {
	t.Helper()

	svc, err := newJWTService(testSecret, clock.Now)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Nil(t, svc)
	assert.True(t, errors.Is(err, domainerrors.ErrConfig))
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(t, clock)
	userID := uuid.New()

	token, err := svc.IssueAccessToken(userID, time.Hour)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	got, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_VerifyExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	svc := newTestService(t, clock)
	userID := uuid.New()

	token, err := svc.IssueAccessToken(userID, 3600*time.Second)
	require.NoError(t, err)

	clock.now = issuedAt.Add(3599 * time.Second)
	got, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	clock.now = issuedAt.Add(3601 * time.Second)
	_, err = svc.VerifyAccessToken(token)
	require.Error(t, err)

	authErr, ok := errors.AsType[*domainerrors.AuthError](err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.AuthReasonExpired, authErr.Reason)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_VerifyRejections(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestService(t, clock)

	token, err := svc.IssueAccessToken(uuid.New(), time.Hour)
	require.NoError(t, err)

	other, err := newJWTService("a_completely_different_signing_secret", clock.Now)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString([]byte("forged"))

	tests := []struct {
		name   string
		token  string
		verify *jwtService
		reason string
	}{
		{name: "empty", token: "", verify: svc, reason: domainerrors.AuthReasonMissing},
		{name: "garbage", token: "not-a-jwt", verify: svc, reason: domainerrors.AuthReasonMalformed},
		{name: "wrong secret", token: token, verify: other, reason: domainerrors.AuthReasonBadSignature},
		{name: "tampered signature", token: tampered, verify: svc, reason: domainerrors.AuthReasonBadSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.verify.VerifyAccessToken(tt.token)
			require.Error(t, err)

			authErr, ok := errors.AsType[*domainerrors.AuthError](err)
			require.True(t, ok)
			assert.Equal(t, tt.reason, authErr.Reason)
			assert.Equal(t, domainerrors.ErrUnauthorized.Message(), authErr.Message())
		})
	}
}

func TestJWTService_IssueRejectsBadTTL(t *testing.T) {
	svc := newTestService(t, &fakeClock{now: time.Now()})

	for _, ttl := range []time.Duration{0, -time.Second} {
		_, err := svc.IssueAccessToken(uuid.New(), ttl)
		assert.True(t, errors.Is(err, domainerrors.ErrConfig), "ttl %s", ttl)
	}
}

func TestJWTService_NewRefreshToken(t *testing.T) {
	svc := newTestService(t, &fakeClock{now: time.Now()})

	raw, hash, err := svc.NewRefreshToken()
	require.NoError(t, err)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	require.NoError(t, err)
	assert.Len(t, decoded, refreshTokenBytes)
	assert.Equal(t, svc.HashToken(raw), hash)
	assert.NotEqual(t, raw, hash)

	digest, err := base64.StdEncoding.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, digest, 32)

	raw2, hash2, err := svc.NewRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
	assert.NotEqual(t, hash, hash2)
}
