package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service      usecase.CheckoutUsecase
	txManager    *mockRepo.MockTransactionManager
	cartRepo     *mockRepo.MockCartRepository
	articleRepo  *mockRepo.MockArticleRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	companyRepo  *mockRepo.MockCompanyRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	gateway      *mockService.MockPaymentGateway
	publisher    *mockService.MockEventPublisher
	notifier     *mockService.MockNotificationService
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	articleRepo := mockRepo.NewMockArticleRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	gateway := mockService.NewMockPaymentGateway(t)
	publisher := mockService.NewMockEventPublisher(t)
	notifier := mockService.NewMockNotificationService(t)

	svc := NewCheckoutService(CheckoutServiceParams{
		TxManager:    txManager,
		CartRepo:     cartRepo,
		ArticleRepo:  articleRepo,
		PurchaseRepo: purchaseRepo,
		CompanyRepo:  companyRepo,
		DeviceRepo:   deviceRepo,
		Gateway:      gateway,
		Publisher:    publisher,
		Notifier:     notifier,
		Guard:        authz.NewGuard(),
		Config: &config.Config{Stripe: &config.StripeConfig{
			Currency:   "twd",
			SuccessURL: "https://shop.example.com/success",
			CancelURL:  "https://shop.example.com/cancel",
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return checkoutServiceFixtures{
		service:      svc,
		txManager:    txManager,
		cartRepo:     cartRepo,
		articleRepo:  articleRepo,
		purchaseRepo: purchaseRepo,
		companyRepo:  companyRepo,
		deviceRepo:   deviceRepo,
		gateway:      gateway,
		publisher:    publisher,
		notifier:     notifier,
	}
}

// txFactory wires a repository factory whose getters return the fixture mocks,
// so transaction bodies run against the same expectations as direct calls.
func (fx checkoutServiceFixtures) txFactory(t *testing.T) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(fx.cartRepo).Maybe()
	factory.EXPECT().ArticleRepo().Return(fx.articleRepo).Maybe()
	factory.EXPECT().PurchaseRepo().Return(fx.purchaseRepo).Maybe()

	return factory
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		price string
		want  int64
	}{
		{"0", 0},
		{"50", 5000},
		{"19.99", 1999},
		{"10.005", 1001}, // half rounds away from zero
		{"10.004", 1000},
		{"-10.005", -1001},
		{"0.005", 1},
	}
	for _, tc := range cases {
		price, err := decimal.NewFromString(tc.price)
		require.NoError(t, err)
		assert.Equal(t, tc.want, toMinorUnits(price), "price %s", tc.price)
	}
}

func TestIsAbsoluteURL(t *testing.T) {
	assert.True(t, isAbsoluteURL("https://cdn.example.com/tea.png"))
	assert.True(t, isAbsoluteURL("http://cdn.example.com/tea.png"))
	assert.False(t, isAbsoluteURL("/static/tea.png"))
	assert.False(t, isAbsoluteURL("cdn.example.com/tea.png"))
	assert.False(t, isAbsoluteURL(""))
	assert.False(t, isAbsoluteURL("ftp://cdn.example.com/tea.png"))
}

func TestCheckoutService_CreateCartCheckout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Email: "buyer@example.com", Role: entity.RoleUser}
	articleID := uuid.New()
	article := &entity.Article{
		ID:       articleID,
		Title:    "紅茶",
		Price:    decimal.NewFromFloat(19.99),
		ImageURL: "https://cdn.example.com/tea.png",
	}
	items := []*entity.CartItem{{ID: uuid.New(), UserID: userID, ArticleID: articleID, Quantity: 2}}

	fx.cartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return(items, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{articleID}).
		Return([]*entity.Article{article}, nil)
	fx.gateway.EXPECT().
		CreateCheckoutSession(ctx, mock.AnythingOfType("*service.CreateCheckoutSessionInput")).
		Run(func(_ context.Context, input *service.CreateCheckoutSessionInput) {
			require.Len(t, input.LineItems, 1)
			line := input.LineItems[0]
			assert.Equal(t, "紅茶", line.Name)
			assert.Equal(t, int64(1999), line.UnitAmount)
			assert.Equal(t, int64(2), line.Quantity)
			assert.Equal(t, "twd", line.Currency)
			assert.Equal(t, []string{"https://cdn.example.com/tea.png"}, line.ImageURLs)
			assert.Equal(t, userID.String(), input.ClientReferenceID)
			assert.Equal(t, "user", input.Metadata["scope"])
			assert.Equal(t, userID.String(), input.Metadata["user_id"])
		}).
		Return(&service.CheckoutSession{ID: "cs_123", URL: "https://pay.example.com/cs_123"}, nil)

	out, err := fx.service.CreateCartCheckout(ctx, principal)
	require.NoError(t, err)
	assert.Equal(t, "cs_123", out.SessionID)
	assert.Equal(t, "https://pay.example.com/cs_123", out.URL)
}

func TestCheckoutService_CreateCartCheckout_RelativeImageDropped(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	articleID := uuid.New()
	article := &entity.Article{ID: articleID, Title: "紅茶", Price: decimal.NewFromInt(50), ImageURL: "/static/tea.png"}

	fx.cartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return([]*entity.CartItem{{ID: uuid.New(), UserID: userID, ArticleID: articleID, Quantity: 1}}, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{articleID}).
		Return([]*entity.Article{article}, nil)
	fx.gateway.EXPECT().
		CreateCheckoutSession(ctx, mock.AnythingOfType("*service.CreateCheckoutSessionInput")).
		Run(func(_ context.Context, input *service.CreateCheckoutSessionInput) {
			assert.Empty(t, input.LineItems[0].ImageURLs)
		}).
		Return(&service.CheckoutSession{ID: "cs_123", URL: "https://pay.example.com/cs_123"}, nil)

	_, err := fx.service.CreateCartCheckout(ctx, principal)
	require.NoError(t, err)
}

func TestCheckoutService_CreateCartCheckout_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}

	fx.cartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return([]*entity.CartItem{}, nil)

	out, err := fx.service.CreateCartCheckout(ctx, principal)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_CreateCartCheckout_MissingArticleFailsBatch(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	presentID := uuid.New()
	goneID := uuid.New()
	present := &entity.Article{ID: presentID, Title: "紅茶", Price: decimal.NewFromInt(50)}
	items := []*entity.CartItem{
		{ID: uuid.New(), UserID: userID, ArticleID: presentID, Quantity: 1},
		{ID: uuid.New(), UserID: userID, ArticleID: goneID, Quantity: 1},
	}

	fx.cartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return(items, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{presentID, goneID}).
		Return([]*entity.Article{present}, nil)

	// No gateway call: a single missing article fails the whole checkout.
	out, err := fx.service.CreateCartCheckout(ctx, principal)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrArticleNotFound)
}

func TestCheckoutService_CreateCartCheckout_GatewayFailure(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	articleID := uuid.New()

	fx.cartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return([]*entity.CartItem{{ID: uuid.New(), UserID: userID, ArticleID: articleID, Quantity: 1}}, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{articleID}).
		Return([]*entity.Article{{ID: articleID, Title: "紅茶", Price: decimal.NewFromInt(50)}}, nil)
	fx.gateway.EXPECT().
		CreateCheckoutSession(ctx, mock.AnythingOfType("*service.CreateCheckoutSessionInput")).
		Return(nil, errors.New("gateway unavailable"))

	out, err := fx.service.CreateCartCheckout(ctx, principal)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentGatewayFailed)
}

func TestCheckoutService_CreateCompanyCheckout_MemberAllowed(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, OwnerID: uuid.New()}
	membership := &entity.CompanyMembership{CompanyID: companyID, UserID: userID, Role: entity.CompanyRoleMember}
	articleID := uuid.New()

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(company, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, userID).
		Return(membership, nil)
	fx.cartRepo.EXPECT().
		ListByCompany(ctx, companyID).
		Return([]*entity.CartItem{{ID: uuid.New(), UserID: userID, ArticleID: articleID, Quantity: 1}}, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{articleID}).
		Return([]*entity.Article{{ID: articleID, Title: "紅茶", Price: decimal.NewFromInt(50)}}, nil)
	fx.gateway.EXPECT().
		CreateCheckoutSession(ctx, mock.AnythingOfType("*service.CreateCheckoutSessionInput")).
		Run(func(_ context.Context, input *service.CreateCheckoutSessionInput) {
			assert.Equal(t, "company", input.Metadata["scope"])
			assert.Equal(t, companyID.String(), input.Metadata["company_id"])
		}).
		Return(&service.CheckoutSession{ID: "cs_co", URL: "https://pay.example.com/cs_co"}, nil)

	out, err := fx.service.CreateCompanyCheckout(ctx, principal, companyID)
	require.NoError(t, err)
	assert.Equal(t, "cs_co", out.SessionID)
}

func TestCheckoutService_CreateCompanyCheckout_NonMemberDenied(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	principal := &entity.Principal{ID: uuid.New(), Role: entity.RoleUser}
	companyID := uuid.New()

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(&entity.Company{ID: companyID, OwnerID: uuid.New()}, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, principal.ID).
		Return(nil, repository.ErrMembershipNotFound)

	out, err := fx.service.CreateCompanyCheckout(ctx, principal, companyID)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestCheckoutService_VerifySession_Paid(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	entries := []*entity.PurchaseLedgerEntry{
		{ID: uuid.New(), UserID: userID, OrderID: "cs_123", Quantity: 1},
	}

	fx.gateway.EXPECT().
		RetrieveSession(ctx, "cs_123").
		Return(&service.CheckoutSession{
			ID:            "cs_123",
			PaymentStatus: service.PaymentStatusPaid,
			Metadata:      map[string]string{"user_id": userID.String()},
		}, nil)
	fx.purchaseRepo.EXPECT().
		ListByOrderID(ctx, "cs_123").
		Return(entries, nil)

	out, err := fx.service.VerifySession(ctx, principal, "cs_123")
	require.NoError(t, err)
	assert.True(t, out.PaymentSuccessful)
	assert.Equal(t, entries, out.Entries)
}

func TestCheckoutService_VerifySession_Unpaid(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}

	fx.gateway.EXPECT().
		RetrieveSession(ctx, "cs_123").
		Return(&service.CheckoutSession{
			ID:            "cs_123",
			PaymentStatus: service.PaymentStatusUnpaid,
			Metadata:      map[string]string{"user_id": userID.String()},
		}, nil)

	out, err := fx.service.VerifySession(ctx, principal, "cs_123")
	require.NoError(t, err)
	assert.False(t, out.PaymentSuccessful)
	assert.Empty(t, out.Entries)
}

func TestCheckoutService_VerifySession_WrongPrincipal(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	principal := &entity.Principal{ID: uuid.New(), Role: entity.RoleUser}

	fx.gateway.EXPECT().
		RetrieveSession(ctx, "cs_123").
		Return(&service.CheckoutSession{
			ID:            "cs_123",
			PaymentStatus: service.PaymentStatusPaid,
			Metadata:      map[string]string{"user_id": uuid.New().String()},
		}, nil)

	out, err := fx.service.VerifySession(ctx, principal, "cs_123")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestCheckoutService_VerifySession_EmptySessionID(t *testing.T) {
	fx := createTestCheckoutService(t)

	out, err := fx.service.VerifySession(context.Background(), &entity.Principal{ID: uuid.New()}, "")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_HandleWebhookEvent_IgnoresOtherEventTypes(t *testing.T) {
	fx := createTestCheckoutService(t)

	err := fx.service.HandleWebhookEvent(context.Background(), &usecase.WebhookEventInput{
		Type:      "checkout.session.expired",
		SessionID: "cs_123",
	})
	require.NoError(t, err)
}

func TestCheckoutService_HandleWebhookEvent_IgnoresUnpaidSession(t *testing.T) {
	fx := createTestCheckoutService(t)

	err := fx.service.HandleWebhookEvent(context.Background(), &usecase.WebhookEventInput{
		Type:          "checkout.session.completed",
		SessionID:     "cs_123",
		PaymentStatus: "unpaid",
	})
	require.NoError(t, err)
}

func TestCheckoutService_HandleWebhookEvent_UserPayment(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	articleID := uuid.New()
	article := &entity.Article{ID: articleID, Title: "紅茶", Price: decimal.NewFromInt(50)}
	items := []*entity.CartItem{{ID: uuid.New(), UserID: userID, ArticleID: articleID, Quantity: 2}}
	factory := fx.txFactory(t)

	fx.purchaseRepo.EXPECT().
		CountByOrderID(ctx, "cs_123").
		Return(int64(0), nil)
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
	fx.purchaseRepo.EXPECT().
		CreateEntries(ctx, mock.AnythingOfType("[]*entity.PurchaseLedgerEntry")).
		Run(func(_ context.Context, entries []*entity.PurchaseLedgerEntry) {
			require.Len(t, entries, 1)
			assert.Equal(t, userID, entries[0].UserID)
			assert.Equal(t, articleID, entries[0].ArticleID)
			assert.Equal(t, 2, entries[0].Quantity)
			assert.Equal(t, "cs_123", entries[0].OrderID)
			require.NotNil(t, entries[0].UnitPrice)
			assert.True(t, entries[0].UnitPrice.Equal(decimal.NewFromInt(50)))
			require.NotNil(t, entries[0].PaidAt)
		}).
		Return(nil)
	fx.cartRepo.EXPECT().
		ClearUserCart(ctx, userID).
		Return(nil)
	fx.publisher.EXPECT().
		PublishPurchaseEvent(ctx, mock.AnythingOfType("*service.PurchaseEvent")).
		Run(func(_ context.Context, event *service.PurchaseEvent) {
			assert.Equal(t, "cs_123", event.OrderID)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, "100", event.TotalAmount)
			assert.Equal(t, 1, event.ItemCount)
		}).
		Return(nil)
	fx.deviceRepo.EXPECT().
		ListActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{{FCMToken: "token-1", IsActive: true}}, nil)
	fx.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, "付款成功", "您的訂單已完成付款", map[string]string{"order_id": "cs_123"}).
		Return(1, 0, nil, nil)

	err := fx.service.HandleWebhookEvent(ctx, &usecase.WebhookEventInput{
		Type:          "checkout.session.completed",
		SessionID:     "cs_123",
		PaymentStatus: "paid",
		Metadata:      map[string]string{"scope": "user", "user_id": userID.String()},
	})
	require.NoError(t, err)
}

func TestCheckoutService_HandleWebhookEvent_IdempotentOnReplay(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.purchaseRepo.EXPECT().
		CountByOrderID(ctx, "cs_123").
		Return(int64(3), nil)

	// No transaction, no cart clear, no new rows: the replayed event is a no-op.
	err := fx.service.HandleWebhookEvent(ctx, &usecase.WebhookEventInput{
		Type:          "checkout.session.completed",
		SessionID:     "cs_123",
		PaymentStatus: "paid",
		Metadata:      map[string]string{"scope": "user", "user_id": userID.String()},
	})
	require.NoError(t, err)
}

func TestCheckoutService_HandleWebhookEvent_SkipsVanishedArticles(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	presentID := uuid.New()
	goneID := uuid.New()
	present := &entity.Article{ID: presentID, Title: "紅茶", Price: decimal.NewFromInt(50)}
	items := []*entity.CartItem{
		{ID: uuid.New(), UserID: userID, ArticleID: presentID, Quantity: 1},
		{ID: uuid.New(), UserID: userID, ArticleID: goneID, Quantity: 1},
	}
	factory := fx.txFactory(t)

	fx.purchaseRepo.EXPECT().
		CountByOrderID(ctx, "cs_123").
		Return(int64(0), nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	fx.cartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return(items, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{presentID, goneID}).
		Return([]*entity.Article{present}, nil)
	fx.purchaseRepo.EXPECT().
		CreateEntries(ctx, mock.AnythingOfType("[]*entity.PurchaseLedgerEntry")).
		Run(func(_ context.Context, entries []*entity.PurchaseLedgerEntry) {
			// The vanished article drops its line; the rest still commits.
			require.Len(t, entries, 1)
			assert.Equal(t, presentID, entries[0].ArticleID)
		}).
		Return(nil)
	fx.cartRepo.EXPECT().
		ClearUserCart(ctx, userID).
		Return(nil)
	fx.publisher.EXPECT().
		PublishPurchaseEvent(ctx, mock.AnythingOfType("*service.PurchaseEvent")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		ListActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	err := fx.service.HandleWebhookEvent(ctx, &usecase.WebhookEventInput{
		Type:          "checkout.session.completed",
		SessionID:     "cs_123",
		PaymentStatus: "paid",
		Metadata:      map[string]string{"scope": "user", "user_id": userID.String()},
	})
	require.NoError(t, err)
}

func TestCheckoutService_HandleWebhookEvent_AllArticlesVanished(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	goneID := uuid.New()
	items := []*entity.CartItem{{ID: uuid.New(), UserID: userID, ArticleID: goneID, Quantity: 1}}
	factory := fx.txFactory(t)

	fx.purchaseRepo.EXPECT().
		CountByOrderID(ctx, "cs_123").
		Return(int64(0), nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	fx.cartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return(items, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{goneID}).
		Return([]*entity.Article{}, nil)
	fx.cartRepo.EXPECT().
		ClearUserCart(ctx, userID).
		Return(nil)

	// Zero surviving lines is still success: the cart clears, nothing else runs.
	err := fx.service.HandleWebhookEvent(ctx, &usecase.WebhookEventInput{
		Type:          "checkout.session.completed",
		SessionID:     "cs_123",
		PaymentStatus: "paid",
		Metadata:      map[string]string{"scope": "user", "user_id": userID.String()},
	})
	require.NoError(t, err)
}

func TestCheckoutService_HandleWebhookEvent_CompanyPayment(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	companyID := uuid.New()
	articleID := uuid.New()
	article := &entity.Article{ID: articleID, Title: "紅茶", Price: decimal.NewFromInt(50)}
	items := []*entity.CartItem{{ID: uuid.New(), UserID: userID, CompanyID: &companyID, ArticleID: articleID, Quantity: 3}}
	factory := fx.txFactory(t)

	fx.purchaseRepo.EXPECT().
		CountCompanyByOrderID(ctx, "cs_co").
		Return(int64(0), nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	fx.cartRepo.EXPECT().
		ListByCompany(ctx, companyID).
		Return(items, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{articleID}).
		Return([]*entity.Article{article}, nil)
	fx.purchaseRepo.EXPECT().
		CreateCompanyEntries(ctx, mock.AnythingOfType("[]*entity.CompanyPurchaseLedgerEntry")).
		Run(func(_ context.Context, entries []*entity.CompanyPurchaseLedgerEntry) {
			require.Len(t, entries, 1)
			assert.Equal(t, companyID, entries[0].CompanyID)
			assert.Equal(t, userID, entries[0].UserID)
			assert.Equal(t, 3, entries[0].Quantity)
			assert.Equal(t, "cs_co", entries[0].OrderID)
		}).
		Return(nil)
	fx.cartRepo.EXPECT().
		ClearCompanyCart(ctx, companyID).
		Return(nil)
	fx.publisher.EXPECT().
		PublishPurchaseEvent(ctx, mock.AnythingOfType("*service.PurchaseEvent")).
		Run(func(_ context.Context, event *service.PurchaseEvent) {
			assert.Equal(t, companyID.String(), event.CompanyID)
		}).
		Return(nil)
	fx.deviceRepo.EXPECT().
		ListActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	err := fx.service.HandleWebhookEvent(ctx, &usecase.WebhookEventInput{
		Type:          "checkout.session.completed",
		SessionID:     "cs_co",
		PaymentStatus: "paid",
		Metadata: map[string]string{
			"scope":      "company",
			"company_id": companyID.String(),
			"user_id":    userID.String(),
		},
	})
	require.NoError(t, err)
}

func TestCheckoutService_HandleWebhookEvent_InvalidMetadata(t *testing.T) {
	fx := createTestCheckoutService(t)

	err := fx.service.HandleWebhookEvent(context.Background(), &usecase.WebhookEventInput{
		Type:          "checkout.session.completed",
		SessionID:     "cs_123",
		PaymentStatus: "paid",
		Metadata:      map[string]string{"scope": "user", "user_id": "not-a-uuid"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_HandleWebhookEvent_StaleTokensDeactivated(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	articleID := uuid.New()
	factory := fx.txFactory(t)

	fx.purchaseRepo.EXPECT().
		CountByOrderID(ctx, "cs_123").
		Return(int64(0), nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	fx.cartRepo.EXPECT().
		ListByUser(ctx, userID).
		Return([]*entity.CartItem{{ID: uuid.New(), UserID: userID, ArticleID: articleID, Quantity: 1}}, nil)
	fx.articleRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{articleID}).
		Return([]*entity.Article{{ID: articleID, Title: "紅茶", Price: decimal.NewFromInt(50)}}, nil)
	fx.purchaseRepo.EXPECT().
		CreateEntries(ctx, mock.AnythingOfType("[]*entity.PurchaseLedgerEntry")).
		Return(nil)
	fx.cartRepo.EXPECT().
		ClearUserCart(ctx, userID).
		Return(nil)
	fx.publisher.EXPECT().
		PublishPurchaseEvent(ctx, mock.AnythingOfType("*service.PurchaseEvent")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		ListActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{FCMToken: "good", IsActive: true},
			{FCMToken: "stale", IsActive: true},
		}, nil)
	fx.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"good", "stale"}, "付款成功", "您的訂單已完成付款", map[string]string{"order_id": "cs_123"}).
		Return(1, 1, []string{"stale"}, nil)
	fx.deviceRepo.EXPECT().
		DeactivateByToken(ctx, "stale").
		Return(nil)

	err := fx.service.HandleWebhookEvent(ctx, &usecase.WebhookEventInput{
		Type:          "checkout.session.completed",
		SessionID:     "cs_123",
		PaymentStatus: "paid",
		Metadata:      map[string]string{"scope": "user", "user_id": userID.String()},
	})
	require.NoError(t, err)
}
