package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates a new authentication repository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error) {
	var authModel model.AuthenticationModel
	err := r.db.WithContext(ctx).
		First(&authModel, "provider = ? AND provider_user_id = ?", string(provider), providerUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	return toAuthDomain(&authModel), nil
}

func (r *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authModel := fromAuthDomain(auth)
	if err := r.db.WithContext(ctx).Create(authModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "authentication already exists")
		}

		return errors.Wrap(err, "failed to create authentication")
	}

	*auth = *toAuthDomain(authModel)

	return nil
}

func toAuthDomain(m *model.AuthenticationModel) *entity.Authentication {
	return &entity.Authentication{
		ID:             m.ID,
		UserID:         m.UserID,
		Provider:       entity.ProviderType(m.Provider),
		ProviderUserID: m.ProviderUserID,
		PasswordHash:   m.PasswordHash,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromAuthDomain(a *entity.Authentication) *model.AuthenticationModel {
	return &model.AuthenticationModel{
		ID:             a.ID,
		UserID:         a.UserID,
		Provider:       string(a.Provider),
		ProviderUserID: a.ProviderUserID,
		PasswordHash:   a.PasswordHash,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new refresh token repository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	tokenModel := &model.RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(tokenModel).Error; err != nil {
		return errors.Wrap(err, "failed to create refresh token")
	}

	token.ID = tokenModel.ID
	token.CreatedAt = tokenModel.CreatedAt

	return nil
}

func (r *refreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var tokenModel model.RefreshTokenModel
	if err := r.db.WithContext(ctx).First(&tokenModel, "token_hash = ?", tokenHash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	return &entity.RefreshToken{
		ID:        tokenModel.ID,
		UserID:    tokenModel.UserID,
		TokenHash: tokenModel.TokenHash,
		ExpiresAt: tokenModel.ExpiresAt,
		CreatedAt: tokenModel.CreatedAt,
	}, nil
}

func (r *refreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	result := r.db.WithContext(ctx).Delete(&model.RefreshTokenModel{}, "token_hash = ?", tokenHash)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

func (r *refreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.RefreshTokenModel{}, "user_id = ?", userID).Error; err != nil {
		return errors.Wrap(err, "failed to delete refresh tokens by user")
	}

	return nil
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new web session repository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *entity.Session) error {
	sessionModel := &model.SessionModel{
		ID:        session.ID,
		UserID:    session.UserID,
		TokenHash: session.TokenHash,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(sessionModel).Error; err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	session.ID = sessionModel.ID
	session.CreatedAt = sessionModel.CreatedAt

	return nil
}

func (r *sessionRepository) FindSessionByHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionModel model.SessionModel
	if err := r.db.WithContext(ctx).First(&sessionModel, "token_hash = ?", tokenHash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return &entity.Session{
		ID:        sessionModel.ID,
		UserID:    sessionModel.UserID,
		TokenHash: sessionModel.TokenHash,
		ExpiresAt: sessionModel.ExpiresAt,
		CreatedAt: sessionModel.CreatedAt,
	}, nil
}

func (r *sessionRepository) DeleteSessionByHash(ctx context.Context, tokenHash string) error {
	result := r.db.WithContext(ctx).Delete(&model.SessionModel{}, "token_hash = ?", tokenHash)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}
