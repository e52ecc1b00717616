package handler

import (
	"net/http"
	"time"

	"gateway/internal/delivery/api/middleware"
	"gateway/internal/delivery/api/response"
	"gateway/internal/domain/entity"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// AccountHandler serves the endpoints about the signed-in account.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{accountUC: params.AccountUC}
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"display_name"`
}

// IdentityResponse is the public view of a linked identity.
type IdentityResponse struct {
	ID          uuid.UUID `json:"id"`
	Provider    string    `json:"provider"`
	ExternalID  string    `json:"external_id"`
	SecondaryID *string   `json:"secondary_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProviderTokenResponse carries a decrypted provider access token.
type ProviderTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Me returns the authenticated user.
func (h *AccountHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.NewAuthError(domainerrors.AuthReasonMissing, nil)
	}

	user, err := h.accountUC.GetMe(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// Identities lists the external identities linked to the authenticated user.
func (h *AccountHandler) Identities(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.NewAuthError(domainerrors.AuthReasonMissing, nil)
	}

	identities, err := h.accountUC.ListIdentities(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]IdentityResponse, 0, len(identities))
	for _, identity := range identities {
		items = append(items, IdentityResponse{
			ID:          identity.ID,
			Provider:    identity.Provider.String(),
			ExternalID:  identity.ExternalID,
			SecondaryID: identity.SecondaryID,
			CreatedAt:   identity.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, items)
}

// ProviderToken returns the newest provider access token stored for the authenticated user.
func (h *AccountHandler) ProviderToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.NewAuthError(domainerrors.AuthReasonMissing, nil)
	}

	token, err := h.accountUC.GetProviderAccessToken(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return response.Success(c, http.StatusOK, ProviderTokenResponse{AccessToken: token})
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}
}
