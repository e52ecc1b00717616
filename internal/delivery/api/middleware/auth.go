package middleware

import (
	"strings"

	deliverycontext "gateway/internal/delivery/context"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer"

// AuthMiddleware authenticates requests carrying a session access token.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC}
}

// Authenticate rejects the request with 401 unless it carries a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return err
		}

		userID, err := m.sessionUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", domainerrors.NewAuthError(domainerrors.AuthReasonMissing, nil)
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, bearerScheme) || token == "" {
		return "", domainerrors.NewAuthError(domainerrors.AuthReasonMalformed, nil)
	}

	return token, nil
}

// GetUserID returns the user authenticated by AuthMiddleware.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}
