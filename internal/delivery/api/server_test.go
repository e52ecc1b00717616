package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gateway/config"
	apimiddleware "gateway/internal/delivery/api/middleware"
	"gateway/internal/delivery/api/router"
	"gateway/internal/delivery/api/router/handler"
	"gateway/internal/domain/entity"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/infra/metrics"
	mockUsecase "gateway/internal/mocks/usecase"
	"gateway/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	echo      *echo.Echo
	authUC    *mockUsecase.MockAuthUsecase
	sessionUC *mockUsecase.MockSessionUsecase
	accountUC *mockUsecase.MockAccountUsecase
}

func newTestAPIConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.HackClub = &config.HackClubConfig{Mock: true, CallbackURL: "http://localhost:8080/oauth/callback"}
	cfg.RateLimit = &config.RateLimitConfig{Enabled: false}
	cfg.ApplyDefaults()

	return cfg
}

func createTestAPI(t *testing.T, cfg *config.Config) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authUC := mockUsecase.NewMockAuthUsecase(t)
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	accountUC := mockUsecase.NewMockAccountUsecase(t)

	registry := metrics.NewRegistry()
	recorder := metrics.NewRecorder(metrics.NewCollector(registry))

	e := NewEcho(ServerParams{
		Cfg:      cfg,
		Logger:   logger,
		Recorder: recorder,
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				AuthUC:    authUC,
				SessionUC: sessionUC,
				Recorder:  recorder,
				Config:    cfg,
				Logger:    logger,
			}),
			AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: accountUC}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(sessionUC),
			Registry:       registry,
			Config:         cfg,
		},
	})

	return apiFixtures{echo: e, authUC: authUC, sessionUC: sessionUC, accountUC: accountUC}
}

func (f apiFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestAPI_Health(t *testing.T) {
	fx := createTestAPI(t, newTestAPIConfig())

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAPI_StartLogin_RedirectsAndSetsStateCookie(t *testing.T) {
	fx := createTestAPI(t, newTestAPIConfig())
	fx.authUC.EXPECT().BeginLogin(mock.Anything).
		Return(&usecase.LoginRedirect{URL: "https://auth.hackclub.com/oauth/authorize?state=abc", State: "abc"}, nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/auth/hack_club", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://auth.hackclub.com/oauth/authorize?state=abc", rec.Header().Get(echo.HeaderLocation))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, handler.StateCookieName, cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAPI_Callback_ReturnsTokenPair(t *testing.T) {
	fx := createTestAPI(t, newTestAPIConfig())
	fx.authUC.EXPECT().CompleteLogin(mock.Anything, "MOCKCODE").
		Return(&usecase.TokenPair{AccessToken: "a.b.c", RefreshToken: "refresh"}, nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/oauth/callback?code=MOCKCODE&state=xyz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"jwt":"a.b.c","refresh_token":"refresh"}`, rec.Body.String())
}

func TestAPI_Callback_Errors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		code     string
		noDetail bool
	}{
		{name: "missing code", err: domainerrors.ErrMissingCode, status: http.StatusBadRequest, code: "MISSING_CODE"},
		{name: "incomplete profile", err: domainerrors.ErrIncompleteProfile.WrapMessage("no email"), status: http.StatusBadRequest, code: "INCOMPLETE_PROFILE"},
		{name: "link denied", err: domainerrors.ErrAccountLinkDenied, status: http.StatusConflict, code: "ACCOUNT_LINK_DENIED"},
		{name: "exchange failed", err: domainerrors.ErrExchangeFailed.WrapMessage("invalid_grant: secret upstream body"), status: http.StatusInternalServerError, code: "OAUTH_EXCHANGE_FAILED"},
		{name: "profile fetch failed", err: &domainerrors.ProfileFetchError{Status: 502, Body: "upstream trace"}, status: http.StatusInternalServerError, code: "PROFILE_FETCH_FAILED"},
		{name: "storage", err: domainerrors.NewDatabaseExecuteError(assert.AnError, "insert identity"), status: http.StatusInternalServerError, code: "DATABASE_EXECUTE_FAILED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestAPI(t, newTestAPIConfig())
			fx.authUC.EXPECT().CompleteLogin(mock.Anything, mock.AnythingOfType("string")).Return(nil, tc.err)

			rec := fx.do(httptest.NewRequest(http.MethodGet, "/oauth/callback?code=X", nil))

			assert.Equal(t, tc.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tc.code, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "upstream")
			assert.NotContains(t, rec.Body.String(), "insert identity")
		})
	}
}

func TestAPI_Callback_EnforcedState(t *testing.T) {
	cfg := newTestAPIConfig()
	cfg.Auth.EnforceState = true

	t.Run("missing cookie is rejected before the exchange", func(t *testing.T) {
		fx := createTestAPI(t, cfg)

		rec := fx.do(httptest.NewRequest(http.MethodGet, "/oauth/callback?code=X&state=abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "STATE_MISMATCH", decodeError(t, rec).Error.Code)
	})

	t.Run("different state is rejected", func(t *testing.T) {
		fx := createTestAPI(t, cfg)
		req := httptest.NewRequest(http.MethodGet, "/oauth/callback?code=X&state=abc", nil)
		req.AddCookie(&http.Cookie{Name: handler.StateCookieName, Value: "other"})

		rec := fx.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("matching state proceeds", func(t *testing.T) {
		fx := createTestAPI(t, cfg)
		fx.authUC.EXPECT().CompleteLogin(mock.Anything, "X").Return(&usecase.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)
		req := httptest.NewRequest(http.MethodGet, "/oauth/callback?code=X&state=abc", nil)
		req.AddCookie(&http.Cookie{Name: handler.StateCookieName, Value: "abc"})

		rec := fx.do(req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAPI_Refresh(t *testing.T) {
	t.Run("rotates", func(t *testing.T) {
		fx := createTestAPI(t, newTestAPIConfig())
		fx.sessionUC.EXPECT().Rotate(mock.Anything, "old").
			Return(&usecase.TokenPair{AccessToken: "new.jwt", RefreshToken: "new"}, nil)

		rec := fx.do(jsonRequest(http.MethodPost, "/auth/refresh", `{"refresh_token":"old"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"jwt":"new.jwt","refresh_token":"new"}`, rec.Body.String())
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		fx := createTestAPI(t, newTestAPIConfig())
		fx.sessionUC.EXPECT().Rotate(mock.Anything, "used").
			Return(nil, domainerrors.ErrInvalidRefreshToken.WrapMessage("refresh token is unknown or expired"))

		rec := fx.do(jsonRequest(http.MethodPost, "/auth/refresh", `{"refresh_token":"used"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "REFRESH_TOKEN_INVALID", decodeError(t, rec).Error.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	})

	t.Run("oversized token is 401 like any unknown token", func(t *testing.T) {
		fx := createTestAPI(t, newTestAPIConfig())
		body := `{"refresh_token":"` + strings.Repeat("x", 600) + `"}`

		rec := fx.do(jsonRequest(http.MethodPost, "/auth/refresh", body))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "REFRESH_TOKEN_INVALID", decodeError(t, rec).Error.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		fx.sessionUC.AssertNotCalled(t, "Rotate", mock.Anything, mock.Anything)
	})
}

func TestAPI_Logout_AlwaysNoContent(t *testing.T) {
	fx := createTestAPI(t, newTestAPIConfig())
	fx.sessionUC.EXPECT().Revoke(mock.Anything, "rt").Return(nil).Twice()
	fx.sessionUC.EXPECT().Revoke(mock.Anything, "broken").Return(assert.AnError).Once()

	first := fx.do(jsonRequest(http.MethodPost, "/auth/logout", `{"refresh_token":"rt"}`))
	second := fx.do(jsonRequest(http.MethodPost, "/auth/logout", `{"refresh_token":"rt"}`))
	storageFault := fx.do(jsonRequest(http.MethodPost, "/auth/logout", `{"refresh_token":"broken"}`))
	garbage := fx.do(jsonRequest(http.MethodPost, "/auth/logout", `{not json`))

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusNoContent, second.Code)
	assert.Equal(t, http.StatusNoContent, storageFault.Code)
	assert.Equal(t, http.StatusNoContent, garbage.Code)
}

func TestAPI_Logout_OversizedBodyIsNoContent(t *testing.T) {
	fx := createTestAPI(t, newTestAPIConfig())
	body := `{"refresh_token":"` + strings.Repeat("x", 20000) + `"}`

	rec := fx.do(jsonRequest(http.MethodPost, "/auth/logout", body))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	fx.sessionUC.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
}

func TestAPI_BodyLimitStillAppliesToRefresh(t *testing.T) {
	fx := createTestAPI(t, newTestAPIConfig())
	body := `{"refresh_token":"` + strings.Repeat("x", 20000) + `"}`

	rec := fx.do(jsonRequest(http.MethodPost, "/auth/refresh", body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAPI_LogoutAll(t *testing.T) {
	fx := createTestAPI(t, newTestAPIConfig())
	userID := uuid.New()
	fx.sessionUC.EXPECT().Authenticate(mock.Anything, "access").Return(userID, nil)
	fx.sessionUC.EXPECT().RevokeAll(mock.Anything, userID).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout_all", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer access")

	rec := fx.do(req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAPI_Me(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		fx := createTestAPI(t, newTestAPIConfig())

		rec := fx.do(httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Error.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		fx := createTestAPI(t, newTestAPIConfig())
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Token abc")

		rec := fx.do(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired and forged tokens share one body", func(t *testing.T) {
		fx := createTestAPI(t, newTestAPIConfig())
		fx.sessionUC.EXPECT().Authenticate(mock.Anything, "expired").
			Return(uuid.Nil, domainerrors.NewAuthError(domainerrors.AuthReasonExpired, nil))
		fx.sessionUC.EXPECT().Authenticate(mock.Anything, "forged").
			Return(uuid.Nil, domainerrors.NewAuthError(domainerrors.AuthReasonBadSignature, nil))

		expired := httptest.NewRequest(http.MethodGet, "/me", nil)
		expired.Header.Set(echo.HeaderAuthorization, "Bearer expired")
		forged := httptest.NewRequest(http.MethodGet, "/me", nil)
		forged.Header.Set(echo.HeaderAuthorization, "Bearer forged")

		first := decodeError(t, fx.do(expired))
		second := decodeError(t, fx.do(forged))

		assert.Equal(t, first.Error, second.Error)
	})

	t.Run("returns the user", func(t *testing.T) {
		fx := createTestAPI(t, newTestAPIConfig())
		userID := uuid.New()
		name := "Dev User"
		fx.sessionUC.EXPECT().Authenticate(mock.Anything, "access").Return(userID, nil)
		fx.accountUC.EXPECT().GetMe(mock.Anything, userID).
			Return(&entity.User{ID: userID, Email: "dev@example.com", DisplayName: &name, CreatedAt: time.Now()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer access")

		rec := fx.do(req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"dev@example.com"`)
		assert.Contains(t, rec.Body.String(), `"display_name":"Dev User"`)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAPI(t, newTestAPIConfig())
		userID := uuid.New()
		fx.sessionUC.EXPECT().Authenticate(mock.Anything, "access").Return(userID, nil)
		fx.accountUC.EXPECT().GetMe(mock.Anything, userID).Return(nil, domainerrors.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer access")

		rec := fx.do(req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAPI_ProviderToken_IntegrityFailureIsGeneric(t *testing.T) {
	fx := createTestAPI(t, newTestAPIConfig())
	userID := uuid.New()
	fx.sessionUC.EXPECT().Authenticate(mock.Anything, "access").Return(userID, nil)
	fx.accountUC.EXPECT().GetProviderAccessToken(mock.Anything, userID).
		Return("", domainerrors.ErrDecryptionFailed.WrapMessage("cipher: message authentication failed"))

	req := httptest.NewRequest(http.MethodGet, "/me/provider_token", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer access")

	rec := fx.do(req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "cipher")
}

func TestAPI_Metrics(t *testing.T) {
	fx := createTestAPI(t, newTestAPIConfig())
	fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `gateway_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestAPI_RateLimit(t *testing.T) {
	cfg := newTestAPIConfig()
	cfg.RateLimit = &config.RateLimitConfig{Enabled: true, Rate: 0.01, Burst: 1}
	fx := createTestAPI(t, cfg)
	fx.sessionUC.EXPECT().Rotate(mock.Anything, "rt").Return(nil, domainerrors.ErrInvalidRefreshToken).Once()

	first := fx.do(jsonRequest(http.MethodPost, "/auth/refresh", `{"refresh_token":"rt"}`))
	second := fx.do(jsonRequest(http.MethodPost, "/auth/refresh", `{"refresh_token":"rt"}`))

	assert.Equal(t, http.StatusUnauthorized, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestAPI_RateLimit_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	cfg := newTestAPIConfig()
	cfg.RateLimit = &config.RateLimitConfig{Enabled: true, Rate: 0.01, Burst: 1}
	fx := createTestAPI(t, cfg)
	fx.sessionUC.EXPECT().Rotate(mock.Anything, "rt").Return(nil, domainerrors.ErrInvalidRefreshToken).Once()

	first := jsonRequest(http.MethodPost, "/auth/refresh", `{"refresh_token":"rt"}`)
	first.Header.Set(echo.HeaderXForwardedFor, "203.0.113.7")
	second := jsonRequest(http.MethodPost, "/auth/refresh", `{"refresh_token":"rt"}`)
	second.Header.Set(echo.HeaderXForwardedFor, "203.0.113.8")
	second.Header.Set(echo.HeaderXRealIP, "203.0.113.9")

	assert.Equal(t, http.StatusUnauthorized, fx.do(first).Code)
	assert.Equal(t, http.StatusTooManyRequests, fx.do(second).Code)
}

func TestAPI_RateLimit_TrustedProxyForwardsClientAddress(t *testing.T) {
	cfg := newTestAPIConfig()
	cfg.RateLimit = &config.RateLimitConfig{Enabled: true, Rate: 0.01, Burst: 1}
	cfg.HTTP.TrustedProxies = []string{"192.0.2.0/24"}
	fx := createTestAPI(t, cfg)
	fx.sessionUC.EXPECT().Rotate(mock.Anything, "rt").Return(nil, domainerrors.ErrInvalidRefreshToken).Times(2)

	codes := make([]int, 0, 3)
	for _, client := range []string{"203.0.113.7", "203.0.113.8", "203.0.113.7"} {
		req := jsonRequest(http.MethodPost, "/auth/refresh", `{"refresh_token":"rt"}`)
		req.RemoteAddr = "192.0.2.10:4321"
		req.Header.Set(echo.HeaderXForwardedFor, client)
		codes = append(codes, fx.do(req).Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}
