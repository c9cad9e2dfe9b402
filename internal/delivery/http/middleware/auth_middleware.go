package middleware

import (
	"context"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const accessTokenType = "access"

// AuthMiddleware resolves the caller's identity from the session cookie or a
// bearer access token, and gates routes behind the resolved principal.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	cookieName  string
}

// AuthMiddlewareParams holds the dependencies of AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Config      *config.Config
	TokenSvc    service.TokenService
	SessionRepo repository.SessionRepository
	UserRepo    repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	cookieName := "storefront_session"
	if params.Config.Auth != nil && params.Config.Auth.SessionCookieName != "" {
		cookieName = params.Config.Auth.SessionCookieName
	}

	return &AuthMiddleware{
		tokenSvc:    params.TokenSvc,
		sessionRepo: params.SessionRepo,
		userRepo:    params.UserRepo,
		cookieName:  cookieName,
	}
}

// ResolvePrincipal resolves the caller's identity and stores it on the
// context. Resolution never fails the request: any verification problem
// (bad cookie, expired session, malformed or invalid token, vanished user)
// leaves the request anonymous and lets the route-level guards decide.
func (m *AuthMiddleware) ResolvePrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		principal := m.fromSessionCookie(ctx, c)
		if principal == nil {
			principal = m.fromBearerToken(ctx, c)
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// fromSessionCookie resolves the principal from the web session cookie.
func (m *AuthMiddleware) fromSessionCookie(ctx context.Context, c echo.Context) *entity.Principal {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	session, err := m.sessionRepo.FindSessionByHash(ctx, m.tokenSvc.HashToken(cookie.Value))
	if err != nil || session.Expired(time.Now()) {
		return nil
	}

	user, err := m.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil
	}

	return entity.PrincipalFromUser(user)
}

// fromBearerToken resolves the principal from an Authorization bearer token.
func (m *AuthMiddleware) fromBearerToken(ctx context.Context, c echo.Context) *entity.Principal {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return nil
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil || claims.Type != accessTokenType {
		return nil
	}

	user, err := m.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil
	}

	return entity.PrincipalFromUser(user)
}

// RequireUser rejects anonymous requests. It must run after ResolvePrincipal.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetPrincipal(c) == nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
		}

		return next(c)
	}
}

// RequireAdmin rejects requests whose principal is not a platform admin.
// It must run after ResolvePrincipal.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := deliverycontext.GetPrincipal(c)
		if principal == nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
		}
		if !principal.IsAdmin() {
			return response.Forbidden(c, "NOT_AUTHORIZED", "Admin role required")
		}

		return next(c)
	}
}
