// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// deletedArticleTitle is shown in place of catalog items removed after purchase.
const deletedArticleTitle = "已下架的商品"

const dayKeyLayout = "2006-01-02"

// orderService implements the OrderUsecase interface.
type orderService struct {
	purchaseRepo repository.PurchaseRepository
	articleRepo  repository.ArticleRepository
	companyRepo  repository.CompanyRepository
	guard        *authz.Guard
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	PurchaseRepo repository.PurchaseRepository
	ArticleRepo  repository.ArticleRepository
	CompanyRepo  repository.CompanyRepository
	Guard        *authz.Guard
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		purchaseRepo: params.PurchaseRepo,
		articleRepo:  params.ArticleRepo,
		companyRepo:  params.CompanyRepo,
		guard:        params.Guard,
		logger:       params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMyOrders returns the principal's own purchases bucketed per calendar day.
func (srv *orderService) GetMyOrders(ctx context.Context, principal *entity.Principal) ([]*entity.OrderView, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	decision := srv.guard.Authorize(principal, authz.ActionViewOwnOrders, authz.Resource{TargetUserID: principal.ID})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	entries, err := srv.purchaseRepo.ListByUser(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ledger entries")
	}

	snapshots, err := srv.loadSnapshots(ctx, entries)
	if err != nil {
		return nil, err
	}

	return aggregate(entries, snapshots, usecase.GroupByDay), nil
}

// GetCompanyOrders returns a company's purchases consolidated by article.
func (srv *orderService) GetCompanyOrders(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) ([]*entity.OrderView, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	company, err := srv.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, domainerrors.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company")
	}

	membership, err := srv.companyRepo.FindMembership(ctx, companyID, principal.ID)
	if err != nil && !errors.Is(err, repository.ErrMembershipNotFound) {
		return nil, errors.Wrap(err, "failed to find membership")
	}

	decision := srv.guard.Authorize(principal, authz.ActionViewCompanyOrders, authz.Resource{
		Company:    company,
		Membership: membership,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	companyEntries, err := srv.purchaseRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list company ledger entries")
	}

	entries := make([]*entity.PurchaseLedgerEntry, 0, len(companyEntries))
	for _, e := range companyEntries {
		entries = append(entries, e.AsLedgerEntry())
	}

	snapshots, err := srv.loadSnapshots(ctx, entries)
	if err != nil {
		return nil, err
	}

	return aggregate(entries, snapshots, usecase.GroupByNone), nil
}

// GetAllOrders returns every purchase bucketed per (user, calendar day).
func (srv *orderService) GetAllOrders(ctx context.Context, principal *entity.Principal) ([]*entity.OrderView, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	decision := srv.guard.Authorize(principal, authz.ActionViewAllOrders, authz.Resource{})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	entries, err := srv.purchaseRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ledger entries")
	}

	snapshots, err := srv.loadSnapshots(ctx, entries)
	if err != nil {
		return nil, err
	}

	return aggregate(entries, snapshots, usecase.GroupByDateUser), nil
}

// loadSnapshots fetches the catalog rows still backing the given entries.
// Articles deleted since purchase are simply absent from the returned map.
func (srv *orderService) loadSnapshots(ctx context.Context, entries []*entity.PurchaseLedgerEntry) (map[uuid.UUID]*entity.Article, error) {
	seen := make(map[uuid.UUID]struct{}, len(entries))
	ids := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.ArticleID]; ok {
			continue
		}
		seen[entry.ArticleID] = struct{}{}
		ids = append(ids, entry.ArticleID)
	}
	if len(ids) == 0 {
		return map[uuid.UUID]*entity.Article{}, nil
	}

	articles, err := srv.articleRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load article snapshots")
	}

	snapshots := make(map[uuid.UUID]*entity.Article, len(articles))
	for _, article := range articles {
		snapshots[article.ID] = article
	}

	return snapshots, nil
}

// aggregate folds ledger entries into order views over a pre-fetched catalog
// snapshot. It is deterministic: buckets keep discovery order before the
// final date sort, and lines within a bucket keep first-seen article order.
func aggregate(entries []*entity.PurchaseLedgerEntry, snapshots map[uuid.UUID]*entity.Article, groupBy usecase.GroupBy) []*entity.OrderView {
	type bucket struct {
		view      *entity.OrderView
		lineIndex map[uuid.UUID]int
	}

	buckets := make([]*bucket, 0)
	index := make(map[string]*bucket)

	for _, entry := range entries {
		var key string
		switch groupBy {
		case usecase.GroupByDay:
			key = entry.PurchaseDate.Format(dayKeyLayout)
		case usecase.GroupByDateUser:
			key = entry.UserID.String() + ":" + entry.PurchaseDate.Format(dayKeyLayout)
		default:
			key = "all"
		}

		b, ok := index[key]
		if !ok {
			view := &entity.OrderView{
				ID:   key,
				Date: entry.PurchaseDate,
			}
			if groupBy != usecase.GroupByNone {
				view.UserID = entry.UserID
			}
			b = &bucket{view: view, lineIndex: make(map[uuid.UUID]int)}
			index[key] = b
			buckets = append(buckets, b)
		}
		if entry.PurchaseDate.After(b.view.Date) {
			b.view.Date = entry.PurchaseDate
		}

		article, exists := snapshots[entry.ArticleID]
		if !exists {
			article = &entity.Article{
				ID:    entry.ArticleID,
				Title: deletedArticleTitle,
				Price: decimal.Zero,
			}
		}

		unitPrice := article.Price
		if entry.UnitPrice != nil {
			unitPrice = *entry.UnitPrice
		}

		if i, seen := b.lineIndex[entry.ArticleID]; seen {
			b.view.Items[i].Quantity += entry.Quantity
		} else {
			b.lineIndex[entry.ArticleID] = len(b.view.Items)
			b.view.Items = append(b.view.Items, &entity.OrderLine{
				ArticleID: entry.ArticleID,
				Article:   article,
				Quantity:  entry.Quantity,
				UnitPrice: unitPrice,
			})
		}

		b.view.Total = b.view.Total.Add(unitPrice.Mul(decimal.NewFromInt(int64(entry.Quantity))))
		b.view.TotalQuantity += entry.Quantity
	}

	views := make([]*entity.OrderView, 0, len(buckets))
	for _, b := range buckets {
		views = append(views, b.view)
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Date.After(views[j].Date)
	})

	return views
}
