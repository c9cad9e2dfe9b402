package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	sessionRepo      *mockRepo.MockSessionRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
	googleAuth       *mockService.MockOAuthAuthService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	googleAuth := mockService.NewMockOAuthAuthService(t)
	service := NewUserService(UserServiceParams{
		TxManager:         txManager,
		UserRepo:          userRepo,
		AuthRepo:          authRepo,
		RefreshTokenRepo:  refreshTokenRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: googleAuth,
		Guard:             authz.NewGuard(),
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return userServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		sessionRepo:      sessionRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		googleAuth:       googleAuth,
	}
}

// txFactory wires the fixture repos behind a RepositoryFactory so the
// transaction closure runs against the same mocks.
func (fx userServiceFixtures) txFactory(t *testing.T) *mockRepo.MockRepositoryFactory {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	factory.EXPECT().AuthRepo().Return(fx.authRepo).Maybe()
	factory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo).Maybe()
	factory.EXPECT().SessionRepo().Return(fx.sessionRepo).Maybe()

	return factory
}

func (fx userServiceFixtures) expectTx(t *testing.T, ctx context.Context) {
	t.Helper()

	factory := fx.txFactory(t)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestUserService_RegisterUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)
	fx.expectTx(t, ctx)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "new@example.com").
		Return(nil, repository.ErrAuthNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Run(func(_ context.Context, auth *entity.Authentication) {
			assert.Equal(t, entity.ProviderTypeEmail, auth.Provider)
			assert.Equal(t, "new@example.com", auth.ProviderUserID)
			assert.Equal(t, "hashed-password", auth.PasswordHash)
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)
	fx.expectTx(t, ctx)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "taken@example.com").
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	output, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", Role: entity.RoleUser}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "user@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}, nil)
	fx.hasher.EXPECT().Check("password123", "stored-hash").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	fx.tokenService.EXPECT().GenerateTokens(userID, "user").Return("access-jwt", "refresh-jwt", nil)
	fx.tokenService.EXPECT().GenerateSessionToken().Return("session-opaque", nil)
	fx.tokenService.EXPECT().HashToken("refresh-jwt").Return("refresh-hash")
	fx.tokenService.EXPECT().HashToken("session-opaque").Return("session-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.tokenService.EXPECT().GetSessionDuration().Return(30 * 24 * time.Hour)

	fx.expectTx(t, ctx)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, token *entity.RefreshToken) {
			assert.Equal(t, "refresh-hash", token.TokenHash)
			assert.Equal(t, userID, token.UserID)
		}).
		Return(nil)
	fx.sessionRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			assert.Equal(t, "session-hash", session.TokenHash)
			assert.True(t, session.ExpiresAt.After(time.Now().Add(29*24*time.Hour)))
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-jwt", output.AccessToken)
	assert.Equal(t, "refresh-jwt", output.RefreshToken)
	assert.Equal(t, "session-opaque", output.SessionToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "user@example.com").
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "stored-hash"}, nil)
	fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com").
		Return(nil, repository.ErrAuthNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_LoginWithGoogle_ProvisionsOnFirstSignIn(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.googleAuth.EXPECT().
		VerifyIDToken(ctx, "google-id-token").
		Return(&service.OAuthUser{ID: "google-sub-123", Email: "g@example.com", Name: "G User"}, nil)

	fx.expectTx(t, ctx)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub-123").
		Return(nil, repository.ErrAuthNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Run(func(_ context.Context, auth *entity.Authentication) {
			assert.Equal(t, entity.ProviderTypeGoogle, auth.Provider)
			assert.Equal(t, "google-sub-123", auth.ProviderUserID)
			assert.Empty(t, auth.PasswordHash)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), "user").
		Return("access-jwt", "refresh-jwt", nil)
	fx.tokenService.EXPECT().GenerateSessionToken().Return("session-opaque", nil)
	fx.tokenService.EXPECT().HashToken("refresh-jwt").Return("refresh-hash")
	fx.tokenService.EXPECT().HashToken("session-opaque").Return("session-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.tokenService.EXPECT().GetSessionDuration().Return(30 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
	fx.sessionRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)

	output, err := fx.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{IDToken: "google-id-token"})
	require.NoError(t, err)
	assert.Equal(t, "g@example.com", output.User.Email)
}

func TestUserService_LoginWithGoogle_InvalidIDToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.googleAuth.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, assert.AnError)

	output, err := fx.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{IDToken: "bad-token"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshTokens(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleUser}

	fx.tokenService.EXPECT().
		ValidateToken("refresh-jwt").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-jwt").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(&entity.RefreshToken{UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID, "user").Return("new-access-jwt", "ignored", nil)

	output, err := fx.service.RefreshTokens(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-jwt"})
	require.NoError(t, err)
	assert.Equal(t, "new-access-jwt", output.AccessToken)
	assert.Equal(t, "refresh-jwt", output.RefreshToken)
}

func TestUserService_RefreshTokens_ExpiredStoredToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("refresh-jwt").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-jwt").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(&entity.RefreshToken{UserID: userID, ExpiresAt: time.Now().Add(-time.Hour)}, nil)

	output, err := fx.service.RefreshTokens(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-jwt"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("refresh-jwt").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-jwt").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "refresh-hash").
		Return(nil)

	require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-jwt"}))
}

func TestUserService_Logout_UnknownTokenIsNoError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("stale-jwt").
		Return(nil, assert.AnError)
	fx.tokenService.EXPECT().HashToken("stale-jwt").Return("stale-hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "stale-hash").
		Return(repository.ErrRefreshTokenNotFound)

	require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "stale-jwt"}))
}

func TestUserService_GetProfile_SelfAllowed(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "me@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, &entity.Principal{ID: userID, Role: entity.RoleUser}, userID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetProfile_OtherUserDenied(t *testing.T) {
	fx := createTestUserService(t)

	got, err := fx.service.GetProfile(context.Background(), &entity.Principal{ID: uuid.New(), Role: entity.RoleUser}, uuid.New())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}
