// Package handler contains the echo handlers of the API delivery.
package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"gateway/config"
	"gateway/internal/delivery/api/middleware"
	"gateway/internal/delivery/api/response"
	deliverycontext "gateway/internal/delivery/context"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/infra/metrics"
	"gateway/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StateCookieName is the cookie carrying the login state between the redirect and the callback.
const StateCookieName = "oauth_state"

// logoutBodyLimit bounds the logout body, well above any refresh token this service issues.
const logoutBodyLimit = 4 << 10

// Revocation scopes reported to metrics.
const (
	revokeScopeSingle = "single"
	revokeScopeAll    = "all"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	SessionUC usecase.SessionUsecase
	Recorder  metrics.Recorder
	Config    *config.Config
	Logger    *slog.Logger
}

// AuthHandler serves the login, refresh and logout endpoints.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	sessionUC usecase.SessionUsecase
	recorder  metrics.Recorder
	auth      *config.AuthConfig
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:    params.AuthUC,
		sessionUC: params.SessionUC,
		recorder:  params.Recorder,
		auth:      params.Config.Auth,
		logger:    params.Logger,
	}
}

// RefreshTokenRequest is the body of the refresh and logout endpoints.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"max=512"`
}

// StartLogin redirects the browser to the provider and remembers the state in a cookie.
func (h *AuthHandler) StartLogin(c echo.Context) error {
	redirect, err := h.authUC.BeginLogin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     StateCookieName,
		Value:    redirect.State,
		Path:     "/",
		MaxAge:   int(h.auth.StateCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.auth.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusTemporaryRedirect, redirect.URL)
}

// Callback completes the login and returns the session as {"jwt", "refresh_token"}.
func (h *AuthHandler) Callback(c echo.Context) error {
	h.clearStateCookie(c)

	if h.auth.EnforceState {
		if err := checkState(c); err != nil {
			h.recorder.RecordLogin(outcomeOf(err))

			return err
		}
	}

	pair, err := h.authUC.CompleteLogin(c.Request().Context(), c.QueryParam("code"))
	h.recorder.RecordLogin(outcomeOf(err))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, pair)
}

// Refresh rotates a refresh token and returns the new session.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		// A token that cannot have been issued here is answered like any other unknown token.
		err = domainerrors.ErrInvalidRefreshToken.WrapMessage("refresh token is malformed")
		h.recorder.RecordRotation(outcomeOf(err))

		return err
	}

	pair, err := h.sessionUC.Rotate(c.Request().Context(), req.RefreshToken)
	h.recorder.RecordRotation(outcomeOf(err))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, pair)
}

// Logout revokes the presented refresh token. It answers 204 whatever happens, so it never reveals whether a token existed.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, logoutBodyLimit)

	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusNoContent)
	}

	ctx := c.Request().Context()
	if err := h.sessionUC.Revoke(ctx, req.RefreshToken); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).ErrorContext(ctx, "Logout failed to revoke refresh token", slog.Any("error", err))
	} else {
		h.recorder.RecordRevocation(revokeScopeSingle)
	}

	return c.NoContent(http.StatusNoContent)
}

// LogoutAll revokes every refresh token of the authenticated user.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.NewAuthError(domainerrors.AuthReasonMissing, nil)
	}

	if err := h.sessionUC.RevokeAll(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}
	h.recorder.RecordRevocation(revokeScopeAll)

	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) clearStateCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     StateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.auth.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// checkState compares the callback state with the cookie set by StartLogin.
func checkState(c echo.Context) error {
	state := c.QueryParam("state")
	cookie, err := c.Cookie(StateCookieName)
	if err != nil || state == "" || cookie.Value == "" {
		return domainerrors.ErrStateMismatch.WrapMessage("callback state or state cookie missing")
	}
	if subtle.ConstantTimeCompare([]byte(state), []byte(cookie.Value)) != 1 {
		return domainerrors.ErrStateMismatch.WrapMessage("callback state differs from cookie")
	}

	return nil
}

// outcomeOf labels a use case result for metrics by its error code.
func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return domainerrors.ErrInternalError.ErrorCode()
}
