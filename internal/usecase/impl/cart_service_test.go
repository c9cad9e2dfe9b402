package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	cartRepo    *mockRepo.MockCartRepository
	articleRepo *mockRepo.MockArticleRepository
	companyRepo *mockRepo.MockCompanyRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	articleRepo := mockRepo.NewMockArticleRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	service := NewCartService(CartServiceParams{
		TxManager:   txManager,
		CartRepo:    cartRepo,
		ArticleRepo: articleRepo,
		CompanyRepo: companyRepo,
		Guard:       authz.NewGuard(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return cartServiceFixtures{
		service:     service,
		txManager:   txManager,
		cartRepo:    cartRepo,
		articleRepo: articleRepo,
		companyRepo: companyRepo,
	}
}

func TestCartService_GetCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	articleID := uuid.New()
	article := &entity.Article{ID: articleID, Title: "紅茶", Price: decimal.NewFromInt(50)}
	items := []*entity.CartItem{{ID: uuid.New(), UserID: userID, ArticleID: articleID, Quantity: 2}}

	fx.cartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return(items, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{articleID}).
		Return([]*entity.Article{article}, nil)

	lines, err := fx.service.GetCart(ctx, principal)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, items[0], lines[0].Item)
	assert.Equal(t, article, lines[0].Article)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}

	fx.cartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return([]*entity.CartItem{}, nil)

	lines, err := fx.service.GetCart(ctx, principal)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartService_AddItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	articleID := uuid.New()

	fx.articleRepo.EXPECT().
		FindByID(ctx, articleID).
		Return(&entity.Article{ID: articleID}, nil)
	fx.cartRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(nil)

	item, err := fx.service.AddItem(ctx, principal, &usecase.AddCartItemInput{
		ArticleID: articleID,
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, item.UserID)
	assert.Equal(t, articleID, item.ArticleID)
	assert.Equal(t, 2, item.Quantity)
	assert.Nil(t, item.CompanyID)
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	fx := createTestCartService(t)

	item, err := fx.service.AddItem(context.Background(), &entity.Principal{ID: uuid.New()}, &usecase.AddCartItemInput{
		ArticleID: uuid.New(),
		Quantity:  0,
	})
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_AddItem_UnknownArticle(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	articleID := uuid.New()

	fx.articleRepo.EXPECT().
		FindByID(ctx, articleID).
		Return(nil, repository.ErrArticleNotFound)

	item, err := fx.service.AddItem(ctx, &entity.Principal{ID: uuid.New()}, &usecase.AddCartItemInput{
		ArticleID: articleID,
		Quantity:  1,
	})
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrArticleNotFound)
}

func TestCartService_AddItem_CompanyCartNeedsMembership(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	companyID := uuid.New()
	articleID := uuid.New()

	fx.articleRepo.EXPECT().
		FindByID(ctx, articleID).
		Return(&entity.Article{ID: articleID}, nil)
	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(&entity.Company{ID: companyID, OwnerID: uuid.New()}, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, userID).
		Return(nil, repository.ErrMembershipNotFound)

	item, err := fx.service.AddItem(ctx, principal, &usecase.AddCartItemInput{
		ArticleID: articleID,
		CompanyID: &companyID,
		Quantity:  1,
	})
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestCartService_UpdateItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	itemID := uuid.New()
	item := &entity.CartItem{ID: itemID, UserID: userID, ArticleID: uuid.New(), Quantity: 1}

	fx.cartRepo.EXPECT().
		FindByID(ctx, itemID).
		Return(item, nil)
	fx.cartRepo.EXPECT().
		UpdateQuantity(ctx, itemID, 5).
		Return(nil)

	updated, err := fx.service.UpdateItem(ctx, principal, &usecase.UpdateCartItemInput{
		ItemID:   itemID,
		Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
}

func TestCartService_UpdateItem_ForeignRowDenied(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	principal := &entity.Principal{ID: uuid.New(), Role: entity.RoleUser}
	itemID := uuid.New()

	fx.cartRepo.EXPECT().
		FindByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, UserID: uuid.New(), Quantity: 1}, nil)

	updated, err := fx.service.UpdateItem(ctx, principal, &usecase.UpdateCartItemInput{
		ItemID:   itemID,
		Quantity: 2,
	})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	itemID := uuid.New()

	fx.cartRepo.EXPECT().
		FindByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, UserID: userID, Quantity: 1}, nil)
	fx.cartRepo.EXPECT().
		Remove(ctx, itemID).
		Return(nil)

	require.NoError(t, fx.service.RemoveItem(ctx, principal, itemID))
}

func TestCartService_RemoveItem_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().
		FindByID(ctx, itemID).
		Return(nil, repository.ErrCartItemNotFound)

	err := fx.service.RemoveItem(ctx, &entity.Principal{ID: uuid.New()}, itemID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCartService_CommitCart_AppendsAndClearsAtomically(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	articleID := uuid.New()
	article := &entity.Article{ID: articleID, Title: "紅茶", Price: decimal.NewFromInt(50)}
	items := []*entity.CartItem{{ID: uuid.New(), UserID: userID, ArticleID: articleID, Quantity: 2}}

	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(fx.cartRepo)
	factory.EXPECT().ArticleRepo().Return(fx.articleRepo)
	factory.EXPECT().PurchaseRepo().Return(purchaseRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	fx.cartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return(items, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{articleID}).
		Return([]*entity.Article{article}, nil)
	purchaseRepo.EXPECT().
		CreateEntries(ctx, mock.AnythingOfType("[]*entity.PurchaseLedgerEntry")).
		Run(func(_ context.Context, entries []*entity.PurchaseLedgerEntry) {
			require.Len(t, entries, 1)
			assert.Equal(t, "ref-42", entries[0].OrderID)
			assert.Equal(t, 2, entries[0].Quantity)
		}).
		Return(nil)
	fx.cartRepo.EXPECT().
		ClearUserCart(ctx, userID).
		Return(nil)

	out, err := fx.service.CommitCart(ctx, principal, "ref-42")
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, articleID, out.Entries[0].ArticleID)
}

func TestCartService_CommitCart_EmptyCartYieldsEmptyOutput(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(fx.cartRepo)
	factory.EXPECT().ArticleRepo().Return(fx.articleRepo)
	factory.EXPECT().PurchaseRepo().Return(mockRepo.NewMockPurchaseRepository(t))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	fx.cartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return([]*entity.CartItem{}, nil)
	fx.cartRepo.EXPECT().
		ClearUserCart(ctx, userID).
		Return(nil)

	out, err := fx.service.CommitCart(ctx, principal, "ref-42")
	require.NoError(t, err)
	assert.Empty(t, out.Entries)
}

func TestCartService_CommitCart_RolledBackOnAppendFailure(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	articleID := uuid.New()
	items := []*entity.CartItem{{ID: uuid.New(), UserID: userID, ArticleID: articleID, Quantity: 1}}

	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(fx.cartRepo)
	factory.EXPECT().ArticleRepo().Return(fx.articleRepo)
	factory.EXPECT().PurchaseRepo().Return(purchaseRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			// The transaction manager rolls back when the body fails; the
			// cart must never be cleared in that case.
			return fn(factory)
		})
	fx.cartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return(items, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{articleID}).
		Return([]*entity.Article{{ID: articleID, Price: decimal.NewFromInt(50)}}, nil)
	purchaseRepo.EXPECT().
		CreateEntries(ctx, mock.AnythingOfType("[]*entity.PurchaseLedgerEntry")).
		Return(errors.New("insert failed"))

	out, err := fx.service.CommitCart(ctx, principal, "ref-42")
	assert.Nil(t, out)
	assert.Error(t, err)
}

func TestCartService_NilPrincipal(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.GetCart(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.CommitCart(context.Background(), nil, "")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
