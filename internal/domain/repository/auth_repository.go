package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when no authentication record matches.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository persists the authentication methods attached to users.
type AuthRepository interface {
	// FindAuthentication looks up an authentication row by provider and the
	// provider-side user id (email address for the email provider).
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new authentication method.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}

// ErrRefreshTokenNotFound is returned when a refresh token hash has no row.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository persists hashed refresh tokens.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
}

// ErrSessionNotFound is returned when a session token hash has no row.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists hashed server-side web sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *entity.Session) error
	FindSessionByHash(ctx context.Context, tokenHash string) (*entity.Session, error)
	DeleteSessionByHash(ctx context.Context, tokenHash string) error
}
