// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// AuthServiceImpl implements service.OAuthAuthService for Google ID tokens.
type AuthServiceImpl struct {
	clientID string
	logger   *slog.Logger

	// validate is swappable for tests.
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		logger:   logger,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken verifies a Google ID token against Google's certificates and
// the configured client ID, and maps the payload onto an OAuth user.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, token string) (*service.OAuthUser, error) {
	payload, err := s.validate(ctx, token, s.clientID)
	if err != nil {
		s.logger.Error("Failed to validate Google ID token", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if !emailVerified {
		return nil, errors.New("email not verified")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	locale, _ := payload.Claims["locale"].(string)

	oauthUser := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         email,
		Name:          name,
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     picture,
		EmailVerified: emailVerified,
		Locale:        locale,
	}

	s.logger.Info("Google ID token verified",
		slog.String("userID", oauthUser.ID),
		slog.String("email", oauthUser.Email))

	return oauthUser, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}
