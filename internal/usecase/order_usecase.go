package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// GroupBy selects the bucketing key used when folding ledger entries into
// order views.
type GroupBy string

const (
	// GroupByDay buckets entries per calendar day, for a user's own orders.
	GroupByDay GroupBy = "DAY"
	// GroupByDateUser buckets entries per (user, calendar day), for the
	// admin overview.
	GroupByDateUser GroupBy = "DATE_USER"
	// GroupByNone puts every entry in a single bucket, consolidated by
	// article, for company orders.
	GroupByNone GroupBy = "NONE"
)

// OrderUsecase folds purchase ledger entries into display-facing order views.
type OrderUsecase interface {
	// GetMyOrders returns the principal's own orders, bucketed per day.
	GetMyOrders(ctx context.Context, principal *entity.Principal) ([]*entity.OrderView, error)

	// GetCompanyOrders returns the company ledger consolidated by article.
	// Requires company membership or ownership.
	GetCompanyOrders(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) ([]*entity.OrderView, error)

	// GetAllOrders returns every user's orders bucketed per (user, day).
	// Platform admin only.
	GetAllOrders(ctx context.Context, principal *entity.Principal) ([]*entity.OrderView, error)
}
