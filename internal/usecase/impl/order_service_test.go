package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	purchaseRepo *mockRepo.MockPurchaseRepository
	articleRepo  *mockRepo.MockArticleRepository
	companyRepo  *mockRepo.MockCompanyRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	articleRepo := mockRepo.NewMockArticleRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	service := NewOrderService(OrderServiceParams{
		PurchaseRepo: purchaseRepo,
		ArticleRepo:  articleRepo,
		CompanyRepo:  companyRepo,
		Guard:        authz.NewGuard(),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return orderServiceFixtures{
		service:      service,
		purchaseRepo: purchaseRepo,
		articleRepo:  articleRepo,
		companyRepo:  companyRepo,
	}
}

func ledgerEntry(userID, articleID uuid.UUID, quantity int, date time.Time) *entity.PurchaseLedgerEntry {
	return &entity.PurchaseLedgerEntry{
		ID:           uuid.New(),
		UserID:       userID,
		ArticleID:    articleID,
		Quantity:     quantity,
		PurchaseDate: date,
	}
}

func TestOrderService_GetMyOrders_BucketsPerDay(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	articleID := uuid.New()
	article := &entity.Article{ID: articleID, Title: "紅茶", Price: decimal.NewFromInt(50)}

	day1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 2, 14, 0, 0, 0, time.UTC)
	entries := []*entity.PurchaseLedgerEntry{
		ledgerEntry(userID, articleID, 1, day1),
		ledgerEntry(userID, articleID, 2, day2),
	}

	fx.purchaseRepo.EXPECT().
		ListByUser(ctx, userID).
		Return(entries, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{articleID}).
		Return([]*entity.Article{article}, nil)

	views, err := fx.service.GetMyOrders(ctx, principal)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Newest day first.
	assert.Equal(t, "2025-03-02", views[0].ID)
	assert.Equal(t, "2025-03-01", views[1].ID)
	assert.Equal(t, userID, views[0].UserID)
	assert.Equal(t, 2, views[0].TotalQuantity)
	assert.True(t, views[0].Total.Equal(decimal.NewFromInt(100)))
	assert.True(t, views[1].Total.Equal(decimal.NewFromInt(50)))
}

func TestOrderService_GetMyOrders_ConsolidatesByArticle(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	teaID := uuid.New()
	coffeeID := uuid.New()
	tea := &entity.Article{ID: teaID, Title: "紅茶", Price: decimal.NewFromInt(50)}
	coffee := &entity.Article{ID: coffeeID, Title: "咖啡", Price: decimal.NewFromInt(80)}

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []*entity.PurchaseLedgerEntry{
		ledgerEntry(userID, teaID, 1, day.Add(9*time.Hour)),
		ledgerEntry(userID, coffeeID, 1, day.Add(10*time.Hour)),
		ledgerEntry(userID, teaID, 3, day.Add(11*time.Hour)),
	}

	fx.purchaseRepo.EXPECT().
		ListByUser(ctx, userID).
		Return(entries, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{teaID, coffeeID}).
		Return([]*entity.Article{tea, coffee}, nil)

	views, err := fx.service.GetMyOrders(ctx, principal)
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	require.Len(t, view.Items, 2)
	// Lines keep first-seen article order; repeated articles merge.
	assert.Equal(t, teaID, view.Items[0].ArticleID)
	assert.Equal(t, 4, view.Items[0].Quantity)
	assert.Equal(t, coffeeID, view.Items[1].ArticleID)
	assert.Equal(t, 1, view.Items[1].Quantity)
	assert.Equal(t, 5, view.TotalQuantity)
	assert.True(t, view.Total.Equal(decimal.NewFromInt(280)))
}

func TestOrderService_GetMyOrders_DeletedArticlePlaceholder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	goneID := uuid.New()

	entries := []*entity.PurchaseLedgerEntry{
		ledgerEntry(userID, goneID, 2, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	fx.purchaseRepo.EXPECT().
		ListByUser(ctx, userID).
		Return(entries, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{goneID}).
		Return([]*entity.Article{}, nil)

	views, err := fx.service.GetMyOrders(ctx, principal)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Items, 1)

	line := views[0].Items[0]
	assert.Equal(t, "已下架的商品", line.Article.Title)
	assert.True(t, line.UnitPrice.IsZero())
	assert.Equal(t, 2, line.Quantity)
	assert.True(t, views[0].Total.IsZero())
}

func TestOrderService_GetMyOrders_CapturedUnitPriceWins(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	articleID := uuid.New()
	article := &entity.Article{ID: articleID, Title: "紅茶", Price: decimal.NewFromInt(60)}

	captured := decimal.NewFromInt(50)
	entry := ledgerEntry(userID, articleID, 2, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	entry.UnitPrice = &captured

	fx.purchaseRepo.EXPECT().
		ListByUser(ctx, userID).
		Return([]*entity.PurchaseLedgerEntry{entry}, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{articleID}).
		Return([]*entity.Article{article}, nil)

	views, err := fx.service.GetMyOrders(ctx, principal)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].Items[0].UnitPrice.Equal(captured))
	assert.True(t, views[0].Total.Equal(decimal.NewFromInt(100)))
}

func TestOrderService_GetMyOrders_EmptyLedger(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}

	fx.purchaseRepo.EXPECT().
		ListByUser(ctx, userID).
		Return([]*entity.PurchaseLedgerEntry{}, nil)

	views, err := fx.service.GetMyOrders(ctx, principal)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestOrderService_GetMyOrders_NilPrincipal(t *testing.T) {
	fx := createTestOrderService(t)

	views, err := fx.service.GetMyOrders(context.Background(), nil)
	assert.Nil(t, views)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestOrderService_GetCompanyOrders_SingleConsolidatedBucket(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, OwnerID: userID}
	articleID := uuid.New()
	article := &entity.Article{ID: articleID, Title: "紅茶", Price: decimal.NewFromInt(50)}

	otherBuyer := uuid.New()
	entries := []*entity.CompanyPurchaseLedgerEntry{
		{ID: uuid.New(), CompanyID: companyID, UserID: userID, ArticleID: articleID, Quantity: 1, PurchaseDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), CompanyID: companyID, UserID: otherBuyer, ArticleID: articleID, Quantity: 2, PurchaseDate: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
	}

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(company, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, userID).
		Return(nil, repository.ErrMembershipNotFound)
	fx.purchaseRepo.EXPECT().
		ListByCompany(ctx, companyID).
		Return(entries, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{articleID}).
		Return([]*entity.Article{article}, nil)

	views, err := fx.service.GetCompanyOrders(ctx, principal, companyID)
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	// Entries from different buyers and days consolidate into one bucket.
	assert.Equal(t, "all", view.ID)
	assert.Equal(t, uuid.Nil, view.UserID)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), view.Date)
	assert.True(t, view.Total.Equal(decimal.NewFromInt(150)))
}

func TestOrderService_GetCompanyOrders_NonMemberDenied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	principal := &entity.Principal{ID: uuid.New(), Role: entity.RoleUser}
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, OwnerID: uuid.New()}

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(company, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, principal.ID).
		Return(nil, repository.ErrMembershipNotFound)

	views, err := fx.service.GetCompanyOrders(ctx, principal, companyID)
	assert.Nil(t, views)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestOrderService_GetCompanyOrders_CompanyNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	principal := &entity.Principal{ID: uuid.New(), Role: entity.RoleUser}
	companyID := uuid.New()

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(nil, repository.ErrCompanyNotFound)

	views, err := fx.service.GetCompanyOrders(ctx, principal, companyID)
	assert.Nil(t, views)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyNotFound)
}

func TestOrderService_GetAllOrders_BucketsPerUserAndDay(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	admin := &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}
	alice := uuid.New()
	bob := uuid.New()
	articleID := uuid.New()
	article := &entity.Article{ID: articleID, Title: "紅茶", Price: decimal.NewFromInt(50)}

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []*entity.PurchaseLedgerEntry{
		ledgerEntry(alice, articleID, 1, day),
		ledgerEntry(bob, articleID, 1, day),
		ledgerEntry(alice, articleID, 2, day.AddDate(0, 0, 1)),
	}

	fx.purchaseRepo.EXPECT().
		ListAll(ctx).
		Return(entries, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{articleID}).
		Return([]*entity.Article{article}, nil)

	views, err := fx.service.GetAllOrders(ctx, admin)
	require.NoError(t, err)
	require.Len(t, views, 3)

	// Same user and same day never split; the newest bucket sorts first.
	assert.Equal(t, alice, views[0].UserID)
	assert.Equal(t, 2, views[0].TotalQuantity)
	assert.Equal(t, alice.String()+":2025-03-02", views[0].ID)
}

func TestOrderService_GetAllOrders_StableOrderWithinSameDate(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	admin := &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}
	alice := uuid.New()
	bob := uuid.New()
	articleID := uuid.New()
	article := &entity.Article{ID: articleID, Title: "紅茶", Price: decimal.NewFromInt(50)}

	date := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []*entity.PurchaseLedgerEntry{
		ledgerEntry(alice, articleID, 1, date),
		ledgerEntry(bob, articleID, 1, date),
	}

	fx.purchaseRepo.EXPECT().
		ListAll(ctx).
		Return(entries, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return([]*entity.Article{article}, nil)

	views, err := fx.service.GetAllOrders(ctx, admin)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Equal dates keep discovery order: the sort is stable.
	assert.Equal(t, alice, views[0].UserID)
	assert.Equal(t, bob, views[1].UserID)
}

func TestOrderService_GetAllOrders_RegularUserDenied(t *testing.T) {
	fx := createTestOrderService(t)

	views, err := fx.service.GetAllOrders(context.Background(), &entity.Principal{ID: uuid.New(), Role: entity.RoleUser})
	assert.Nil(t, views)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}
