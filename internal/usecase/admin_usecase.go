package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DailyRevenue is the ledger revenue of one calendar day.
type DailyRevenue struct {
	Day     time.Time
	Revenue decimal.Decimal
}

// DashboardOutput carries the admin dashboard aggregates.
type DashboardOutput struct {
	UserCount    int64
	ArticleCount int64
	OrderCount   int64
	Revenue      decimal.Decimal
	RevenueByDay []*DailyRevenue
}

// AdminUsecase serves the admin back-office aggregates.
type AdminUsecase interface {
	Dashboard(ctx context.Context, principal *entity.Principal) (*DashboardOutput, error)
}
