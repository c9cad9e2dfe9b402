package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel is the GORM data model for the user_devices table holding
// FCM registration tokens for push notifications.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_device"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_device"`
	FCMToken  string    `gorm:"type:text;not null"`
	Platform  string    `gorm:"type:varchar(32)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
