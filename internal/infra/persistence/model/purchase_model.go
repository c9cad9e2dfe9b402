package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseLedgerEntryModel is the GORM data model for the purchase_ledger table.
// Rows are append-only; the unit price is captured at purchase time so later
// catalog edits never rewrite history.
type PurchaseLedgerEntryModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	ArticleID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Quantity     int              `gorm:"not null"`
	UnitPrice    *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PurchaseDate time.Time        `gorm:"not null;index"`
	OrderID      string           `gorm:"type:varchar(255);index"`
	PaidAt       *time.Time
	CreatedAt    time.Time
}

// TableName explicitly sets the table name.
func (PurchaseLedgerEntryModel) TableName() string {
	return "purchase_ledger"
}

// CompanyPurchaseLedgerEntryModel is the GORM data model for the
// company_purchase_ledger table.
type CompanyPurchaseLedgerEntryModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	ArticleID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Quantity     int              `gorm:"not null"`
	UnitPrice    *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PurchaseDate time.Time        `gorm:"not null;index"`
	OrderID      string           `gorm:"type:varchar(255);index"`
	PaidAt       *time.Time
	CreatedAt    time.Time
}

// TableName explicitly sets the table name.
func (CompanyPurchaseLedgerEntryModel) TableName() string {
	return "company_purchase_ledger"
}

// CartItemModel is the GORM data model for the cart_items table. A row with a
// nil CompanyID belongs to the user's personal cart.
type CartItemModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index"`
	ArticleID uuid.UUID  `gorm:"type:uuid;not null"`
	Quantity  int        `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name.
func (CartItemModel) TableName() string {
	return "cart_items"
}
