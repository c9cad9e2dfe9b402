package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	guard             *authz.Guard
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	AuthRepo          repository.AuthRepository
	RefreshTokenRepo  repository.RefreshTokenRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Guard             *authz.Guard
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		guard:             params.Guard,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		newUser := &entity.User{
			ID:    uuid.New(),
			Email: input.Email,
			Name:  input.Name,
			Role:  entity.RoleUser,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		newAuth := &entity.Authentication{
			ID:             uuid.New(),
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   passwordHash,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication")
		}
		registeredUser = newUser

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", registeredUser.ID.String()))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies email credentials and issues the token pair plus a web
// session cookie value.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Attempting login", slog.String("email", input.Email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.issueCredentials(ctx, user)
}

// LoginWithGoogle verifies a Google ID token, provisioning the account on
// first sign-in.
func (srv *userService) LoginWithGoogle(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Handling Google sign-in")

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "failed to verify Google ID token")
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
		if err == nil {
			user, err = userRepo.FindByID(ctx, authRecord.UserID)

			return errors.Wrap(err, "failed to find user for google auth")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", oauthUser.Email))
		newUser := &entity.User{
			ID:    uuid.New(),
			Email: oauthUser.Email,
			Name:  oauthUser.Name,
			Role:  entity.RoleUser,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user for google auth")
		}

		newAuth := &entity.Authentication{
			ID:             uuid.New(),
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeGoogle,
			ProviderUserID: oauthUser.ID,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create google authentication")
		}
		user = newUser

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute google sign-in transaction")
	}

	return srv.issueCredentials(ctx, user)
}

// RefreshTokens issues a new access token for a still-valid refresh token.
// The refresh token itself remains unchanged.
func (srv *userService) RefreshTokens(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, string(user.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: input.RefreshToken,
	}, nil
}

// Logout invalidates the presented refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil &&
		!errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// GetProfile returns a user's profile; self or platform admin only.
func (srv *userService) GetProfile(ctx context.Context, principal *entity.Principal, userID uuid.UUID) (*entity.User, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	decision := srv.guard.Authorize(principal, authz.ActionViewProfile, authz.Resource{TargetUserID: userID})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// issueCredentials generates the JWT pair and the opaque web session, then
// persists both hashes in one transaction.
func (srv *userService) issueCredentials(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, string(user.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	sessionToken, err := srv.tokenService.GenerateSessionToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	now := time.Now()
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()
		sessionRepo := repoFactory.SessionRepo()

		if err := refreshRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(refreshTokenString),
			ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
		}); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}

		if err := sessionRepo.CreateSession(ctx, &entity.Session{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(sessionToken),
			ExpiresAt: now.Add(srv.tokenService.GetSessionDuration()),
		}); err != nil {
			return errors.Wrap(err, "failed to store session")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		SessionToken: sessionToken,
		User:         user,
	}, nil
}
