package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseLedgerEntry is an immutable record of one purchased article line.
// Entries are only ever created by the checkout webhook or the cart-commit
// flow, never directly by a client. UnitPrice is captured at creation time
// so historical totals do not drift with catalog price changes; entries
// created before that field existed carry a nil UnitPrice and fall back to
// the live article price at read time.
type PurchaseLedgerEntry struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ArticleID    uuid.UUID
	Quantity     int
	UnitPrice    *decimal.Decimal
	PurchaseDate time.Time
	OrderID      string // Gateway checkout session id that produced this entry.
	PaidAt       *time.Time
	CreatedAt    time.Time
}

// CompanyPurchaseLedgerEntry is a ledger entry made on behalf of a company.
// It keeps the purchasing user for audit purposes.
type CompanyPurchaseLedgerEntry struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	UserID       uuid.UUID
	ArticleID    uuid.UUID
	Quantity     int
	UnitPrice    *decimal.Decimal
	PurchaseDate time.Time
	OrderID      string
	PaidAt       *time.Time
	CreatedAt    time.Time
}

// AsLedgerEntry projects a company entry onto the shared ledger shape so the
// order aggregator can treat both flows uniformly.
func (e *CompanyPurchaseLedgerEntry) AsLedgerEntry() *PurchaseLedgerEntry {
	return &PurchaseLedgerEntry{
		ID:           e.ID,
		UserID:       e.UserID,
		ArticleID:    e.ArticleID,
		Quantity:     e.Quantity,
		UnitPrice:    e.UnitPrice,
		PurchaseDate: e.PurchaseDate,
		OrderID:      e.OrderID,
		PaidAt:       e.PaidAt,
		CreatedAt:    e.CreatedAt,
	}
}

// CartItem is one pending line in a user's (or company's) cart. A nil
// CompanyID marks a personal cart row.
type CartItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CompanyID *uuid.UUID
	ArticleID uuid.UUID
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
