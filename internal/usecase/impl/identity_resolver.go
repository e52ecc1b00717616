// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"gateway/config"
	deliverycontext "gateway/internal/delivery/context"
	"gateway/internal/domain/entity"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/domain/repository"
	"gateway/internal/domain/service"
	"gateway/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityResolver implements the IdentityResolver interface.
// Each step commits on its own; a failure after the user insert leaves an account without identities.
type identityResolver struct {
	userRepo     repository.UserRepository
	identityRepo repository.IdentityRepository
	provider     entity.ProviderType
	linkPolicy   string
	logger       *slog.Logger
}

// IdentityResolverParams holds dependencies for the identity resolver, injected by Fx.
type IdentityResolverParams struct {
	fx.In

	UserRepo     repository.UserRepository
	IdentityRepo repository.IdentityRepository
	OAuthClient  service.OAuthClient
	Config       *config.Config
	Logger       *slog.Logger
}

// NewIdentityResolver is the constructor for identityResolver.
func NewIdentityResolver(params IdentityResolverParams) usecase.IdentityResolver {
	linkPolicy := config.LinkPolicyEmail
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.LinkPolicy != "" {
		linkPolicy = params.Config.Auth.LinkPolicy
	}

	return &identityResolver{
		userRepo:     params.UserRepo,
		identityRepo: params.IdentityRepo,
		provider:     params.OAuthClient.Provider(),
		linkPolicy:   linkPolicy,
		logger:       params.Logger,
	}
}

func (srv *identityResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveAndLink finds or creates the user owning the profile email, then the identity for the provider account.
// An identity that already exists keeps the user it was first linked to.
func (srv *identityResolver) ResolveAndLink(ctx context.Context, profile *service.Profile) (*usecase.ResolvedIdentity, error) {
	if profile == nil || profile.ExternalID == "" || isBlank(profile.Email) || isBlank(profile.SecondaryID) {
		return nil, domainerrors.ErrIncompleteProfile.WrapMessage("profile lacks external id, email or secondary id")
	}

	user, userCreated, err := srv.userRepo.FindOrCreateByEmail(ctx, &entity.User{
		Email:       *profile.Email,
		DisplayName: profile.DisplayName,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find or create user")
	}

	if !userCreated && srv.linkPolicy == config.LinkPolicyStrict {
		if err := srv.checkStrictLink(ctx, user, profile.ExternalID); err != nil {
			return nil, err
		}
	}

	identity, identityCreated, err := srv.identityRepo.FindOrCreate(ctx, &entity.Identity{
		UserID:      user.ID,
		Provider:    srv.provider,
		ExternalID:  profile.ExternalID,
		SecondaryID: profile.SecondaryID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find or create identity")
	}

	if identity.UserID != user.ID {
		srv.log(ctx).Warn("Identity is linked to a different user than its reported email",
			slog.Any("identity_id", identity.ID),
			slog.Any("identity_user_id", identity.UserID),
			slog.Any("email_user_id", user.ID),
		)
	}

	srv.log(ctx).Debug("Resolved identity",
		slog.Any("user_id", identity.UserID),
		slog.Any("identity_id", identity.ID),
		slog.Bool("user_created", userCreated),
		slog.Bool("identity_created", identityCreated),
	)

	return &usecase.ResolvedIdentity{
		UserID:      identity.UserID,
		IdentityID:  identity.ID,
		UserCreated: userCreated,
	}, nil
}

// checkStrictLink refuses to attach a new external identity to a user that already has one.
// A user without identities is the leftover of an interrupted first login and may still be claimed.
func (srv *identityResolver) checkStrictLink(ctx context.Context, user *entity.User, externalID string) error {
	_, err := srv.identityRepo.FindByProviderAndExternalID(ctx, srv.provider, externalID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrIdentityNotFound) {
		return errors.Wrap(err, "failed to look up identity")
	}

	linked, err := srv.identityRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to list identities of user")
	}
	if len(linked) > 0 {
		srv.log(ctx).Warn("Refused to link a new identity to an existing account",
			slog.Any("user_id", user.ID),
			slog.String("provider", srv.provider.String()),
		)

		return domainerrors.ErrAccountLinkDenied.WrapMessage("email already belongs to a linked account")
	}

	return nil
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
