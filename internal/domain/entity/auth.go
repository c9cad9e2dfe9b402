package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies the authentication method backing a login.
type ProviderType string

const (
	// ProviderTypeEmail is the classic email + password login.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is Google ID-token sign-in.
	ProviderTypeGoogle ProviderType = "google"
)

// Authentication links a user to one login method. A user may hold several
// (e.g. password plus Google).
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string // Email for the email provider, Google subject otherwise.
	PasswordHash   string // Only set for the email provider.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RefreshToken is a stored, hashed refresh credential. The raw token is
// never persisted.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Session is a server-side web session. The cookie carries the raw opaque
// token; only its hash is stored.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
