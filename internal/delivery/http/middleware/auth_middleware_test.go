package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "storefront_session"

type authMiddlewareFixtures struct {
	middleware  *AuthMiddleware
	tokenSvc    *mockService.MockTokenService
	sessionRepo *mockRepo.MockSessionRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockService.NewMockTokenService(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	middleware := NewAuthMiddleware(AuthMiddlewareParams{
		Config:      &config.Config{Auth: &config.AuthConfig{SessionCookieName: testCookieName}},
		TokenSvc:    tokenSvc,
		SessionRepo: sessionRepo,
		UserRepo:    userRepo,
	})

	return authMiddlewareFixtures{
		middleware:  middleware,
		tokenSvc:    tokenSvc,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

// resolvePrincipal runs the middleware over a handler that captures the
// principal left on the request context.
func resolvePrincipal(t *testing.T, fx authMiddlewareFixtures, decorate func(*http.Request)) *entity.Principal {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if decorate != nil {
		decorate(req)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var principal *entity.Principal
	handler := fx.middleware.ResolvePrincipal(func(c echo.Context) error {
		principal = deliverycontext.GetPrincipal(c)
		return nil
	})
	require.NoError(t, handler(c))

	return principal
}

func TestAuthMiddleware_AnonymousWithoutCredentials(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	principal := resolvePrincipal(t, fx, nil)

	assert.Nil(t, principal)
}

func TestAuthMiddleware_SessionCookieResolvesPrincipal(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", Role: entity.RoleUser}

	fx.tokenSvc.EXPECT().HashToken("raw-session-token").Return("hashed")
	fx.sessionRepo.EXPECT().
		FindSessionByHash(mock.Anything, "hashed").
		Return(&entity.Session{UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	principal := resolvePrincipal(t, fx, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "raw-session-token"})
	})

	require.NotNil(t, principal)
	assert.Equal(t, userID, principal.ID)
	assert.Equal(t, entity.RoleUser, principal.Role)
}

func TestAuthMiddleware_ExpiredSessionLeavesRequestAnonymous(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().HashToken("raw-session-token").Return("hashed")
	fx.sessionRepo.EXPECT().
		FindSessionByHash(mock.Anything, "hashed").
		Return(&entity.Session{UserID: uuid.New(), ExpiresAt: time.Now().Add(-time.Minute)}, nil)

	principal := resolvePrincipal(t, fx, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "raw-session-token"})
	})

	assert.Nil(t, principal)
}

func TestAuthMiddleware_UnknownSessionLeavesRequestAnonymous(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().HashToken("raw-session-token").Return("hashed")
	fx.sessionRepo.EXPECT().
		FindSessionByHash(mock.Anything, "hashed").
		Return(nil, repository.ErrSessionNotFound)

	principal := resolvePrincipal(t, fx, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "raw-session-token"})
	})

	assert.Nil(t, principal)
}

func TestAuthMiddleware_BearerTokenResolvesPrincipal(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", Role: entity.RoleAdmin}

	fx.tokenSvc.EXPECT().
		ValidateToken("access-jwt").
		Return(&service.Claims{UserID: userID, Role: string(entity.RoleAdmin), Type: "access"}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	principal := resolvePrincipal(t, fx, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer access-jwt")
	})

	require.NotNil(t, principal)
	assert.Equal(t, userID, principal.ID)
	assert.True(t, principal.IsAdmin())
}

func TestAuthMiddleware_InvalidBearerTokenLeavesRequestAnonymous(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("token is malformed"))

	principal := resolvePrincipal(t, fx, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer garbage")
	})

	assert.Nil(t, principal)
}

func TestAuthMiddleware_RefreshTokenRejectedAsAccessCredential(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().
		ValidateToken("refresh-jwt").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)

	principal := resolvePrincipal(t, fx, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer refresh-jwt")
	})

	assert.Nil(t, principal)
}

func TestAuthMiddleware_MalformedAuthorizationHeaderIgnored(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	principal := resolvePrincipal(t, fx, func(req *http.Request) {
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	})

	assert.Nil(t, principal)
}

func TestAuthMiddleware_VanishedUserLeavesRequestAnonymous(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	userID := uuid.New()

	fx.tokenSvc.EXPECT().
		ValidateToken("access-jwt").
		Return(&service.Claims{UserID: userID, Type: "access"}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	principal := resolvePrincipal(t, fx, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer access-jwt")
	})

	assert.Nil(t, principal)
}

func TestAuthMiddleware_RequireUser(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	e := echo.New()

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	// Anonymous request is rejected.
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, fx.middleware.RequireUser(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Authenticated request passes through.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetPrincipal(c, &entity.Principal{ID: uuid.New(), Role: entity.RoleUser})
	require.NoError(t, fx.middleware.RequireUser(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	e := echo.New()

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetPrincipal(c, &entity.Principal{ID: uuid.New(), Role: entity.RoleUser})
	require.NoError(t, fx.middleware.RequireAdmin(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetPrincipal(c, &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin})
	require.NoError(t, fx.middleware.RequireAdmin(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
