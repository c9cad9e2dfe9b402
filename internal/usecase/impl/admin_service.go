package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo     repository.UserRepository
	articleRepo  repository.ArticleRepository
	purchaseRepo repository.PurchaseRepository
	guard        *authz.Guard
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	ArticleRepo  repository.ArticleRepository
	PurchaseRepo repository.PurchaseRepository
	Guard        *authz.Guard
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:     params.UserRepo,
		articleRepo:  params.ArticleRepo,
		purchaseRepo: params.PurchaseRepo,
		guard:        params.Guard,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard computes the back-office aggregates over fetched rows.
func (srv *adminService) Dashboard(ctx context.Context, principal *entity.Principal) (*usecase.DashboardOutput, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	decision := srv.guard.Authorize(principal, authz.ActionViewDashboard, authz.Resource{})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	userCount, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	articleCount, err := srv.articleRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count articles")
	}
	orderCount, err := srv.purchaseRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count ledger entries")
	}

	entries, err := srv.purchaseRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ledger entries")
	}

	revenue := decimal.Zero
	byDay := make(map[string]*usecase.DailyRevenue)
	dayOrder := make([]string, 0)
	for _, entry := range entries {
		if entry.UnitPrice == nil {
			continue
		}
		amount := entry.UnitPrice.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		revenue = revenue.Add(amount)

		day := entry.PurchaseDate.Format(dayKeyLayout)
		bucket, ok := byDay[day]
		if !ok {
			dayDate, _ := time.ParseInLocation(dayKeyLayout, day, entry.PurchaseDate.Location())
			bucket = &usecase.DailyRevenue{Day: dayDate}
			byDay[day] = bucket
			dayOrder = append(dayOrder, day)
		}
		bucket.Revenue = bucket.Revenue.Add(amount)
	}

	revenueByDay := make([]*usecase.DailyRevenue, 0, len(dayOrder))
	for _, day := range dayOrder {
		revenueByDay = append(revenueByDay, byDay[day])
	}
	sort.SliceStable(revenueByDay, func(i, j int) bool {
		return revenueByDay[i].Day.After(revenueByDay[j].Day)
	})

	return &usecase.DashboardOutput{
		UserCount:    userCount,
		ArticleCount: articleCount,
		OrderCount:   orderCount,
		Revenue:      revenue,
		RevenueByDay: revenueByDay,
	}, nil
}
