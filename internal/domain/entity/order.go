package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine is one consolidated article line inside an order view.
// Article is the catalog snapshot read at aggregation time; for articles
// that no longer exist it carries a placeholder title and a zero price.
type OrderLine struct {
	ArticleID uuid.UUID
	Article   *Article
	Quantity  int
	UnitPrice decimal.Decimal
}

// LineTotal returns the price contribution of this line.
func (l *OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderView is a UI-facing grouping of ledger entries. It is computed on
// read and never persisted; ID is the synthetic grouping key.
type OrderView struct {
	ID            string
	Date          time.Time
	UserID        uuid.UUID // Buyer for user/day buckets; zero value for company views.
	Items         []*OrderLine
	Total         decimal.Decimal
	TotalQuantity int
}
