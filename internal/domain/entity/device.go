package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a registered push-notification target for a user.
type UserDevice struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FCMToken  string
	DeviceID  string
	Platform  string // "ios", "android" or "web".
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
