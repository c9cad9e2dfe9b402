// Package model contains the GORM data models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM data model for the users table.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Role      string    `gorm:"type:varchar(32);not null;default:'user'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name.
func (UserModel) TableName() string {
	return "users"
}

// AuthenticationModel is the GORM data model for the authentications table.
// Each row binds a user to one login method (email/password or Google).
type AuthenticationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider       string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_provider_user"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_provider_user"`
	PasswordHash   string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name.
func (AuthenticationModel) TableName() string {
	return "authentications"
}

// RefreshTokenModel is the GORM data model for the refresh_tokens table.
// Tokens are stored hashed; the raw token never touches the database.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// SessionModel is the GORM data model for the sessions table backing the
// session cookie channel.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name.
func (SessionModel) TableName() string {
	return "sessions"
}
