package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel is the GORM data model for the companies table.
type CompanyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Email     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name.
func (CompanyModel) TableName() string {
	return "companies"
}

// CompanyMembershipModel is the GORM data model for the company_memberships
// table. A user holds at most one membership per company.
type CompanyMembershipModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_company_member"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_company_member"`
	Role      string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Company CompanyModel `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	User    UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name.
func (CompanyMembershipModel) TableName() string {
	return "company_memberships"
}

// CompanyInvitationModel is the GORM data model for the company_invitations table.
type CompanyInvitationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:varchar(32);not null"`
	Status    string    `gorm:"type:varchar(32);not null;default:'pending'"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Company CompanyModel `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name.
func (CompanyInvitationModel) TableName() string {
	return "company_invitations"
}
