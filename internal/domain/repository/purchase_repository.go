package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseRepository defines the persistence operations for the purchase
// ledgers. Ledger rows are append-only: there is no update or delete.
type PurchaseRepository interface {
	// CreateEntries appends rows to the personal purchase ledger.
	CreateEntries(ctx context.Context, entries []*entity.PurchaseLedgerEntry) error

	// CreateCompanyEntries appends rows to the company purchase ledger.
	CreateCompanyEntries(ctx context.Context, entries []*entity.CompanyPurchaseLedgerEntry) error

	// ListByUser returns the personal ledger rows of a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseLedgerEntry, error)

	// ListAll returns every personal ledger row, newest first.
	ListAll(ctx context.Context) ([]*entity.PurchaseLedgerEntry, error)

	// ListByCompany returns the company ledger rows of a company, newest first.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.CompanyPurchaseLedgerEntry, error)

	// ListByOrderID returns the personal ledger rows carrying the order id,
	// in creation order.
	ListByOrderID(ctx context.Context, orderID string) ([]*entity.PurchaseLedgerEntry, error)

	// CountByOrderID reports how many personal ledger rows carry the order id.
	// Used to keep payment reconciliation idempotent.
	CountByOrderID(ctx context.Context, orderID string) (int64, error)

	// CountCompanyByOrderID reports how many company ledger rows carry the order id.
	CountCompanyByOrderID(ctx context.Context, orderID string) (int64, error)

	// MarkPaidByOrderID stamps PaidAt on every ledger row carrying the order id.
	MarkPaidByOrderID(ctx context.Context, orderID string, paidAt time.Time) error

	// Count returns the total number of personal ledger rows, used by the admin dashboard.
	Count(ctx context.Context) (int64, error)
}
