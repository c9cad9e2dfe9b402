package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	checkoutScopeUser    = "user"
	checkoutScopeCompany = "company"

	eventCheckoutCompleted = "checkout.session.completed"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager    repository.TransactionManager
	cartRepo     repository.CartRepository
	articleRepo  repository.ArticleRepository
	purchaseRepo repository.PurchaseRepository
	companyRepo  repository.CompanyRepository
	deviceRepo   repository.DeviceRepository
	gateway      service.PaymentGateway
	publisher    service.EventPublisher
	notifier     service.NotificationService
	guard        *authz.Guard
	currency     string
	successURL   string
	cancelURL    string
	logger       *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CartRepo     repository.CartRepository
	ArticleRepo  repository.ArticleRepository
	PurchaseRepo repository.PurchaseRepository
	CompanyRepo  repository.CompanyRepository
	DeviceRepo   repository.DeviceRepository
	Gateway      service.PaymentGateway
	Publisher    service.EventPublisher
	Notifier     service.NotificationService
	Guard        *authz.Guard
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	currency := "twd"
	successURL := ""
	cancelURL := ""
	if params.Config != nil && params.Config.Stripe != nil {
		if params.Config.Stripe.Currency != "" {
			currency = params.Config.Stripe.Currency
		}
		successURL = params.Config.Stripe.SuccessURL
		cancelURL = params.Config.Stripe.CancelURL
	}

	return &checkoutService{
		txManager:    params.TxManager,
		cartRepo:     params.CartRepo,
		articleRepo:  params.ArticleRepo,
		purchaseRepo: params.PurchaseRepo,
		companyRepo:  params.CompanyRepo,
		deviceRepo:   params.DeviceRepo,
		gateway:      params.Gateway,
		publisher:    params.Publisher,
		notifier:     params.Notifier,
		guard:        params.Guard,
		currency:     currency,
		successURL:   successURL,
		cancelURL:    cancelURL,
		logger:       params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCartCheckout opens a gateway session over the principal's personal cart.
func (srv *checkoutService) CreateCartCheckout(ctx context.Context, principal *entity.Principal) (*usecase.CheckoutRedirectOutput, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	items, err := srv.cartRepo.ListByUser(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	metadata := map[string]string{
		"scope":   checkoutScopeUser,
		"user_id": principal.ID.String(),
	}

	return srv.createCheckout(ctx, principal, items, metadata)
}

// CreateCompanyCheckout opens a gateway session over a company's shared cart.
func (srv *checkoutService) CreateCompanyCheckout(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) (*usecase.CheckoutRedirectOutput, error) {
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

	decision := srv.guard.Authorize(principal, authz.ActionCompanyCheckout, authz.Resource{
		Company:    company,
		Membership: membership,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	items, err := srv.cartRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load company cart")
	}

	metadata := map[string]string{
		"scope":      checkoutScopeCompany,
		"company_id": companyID.String(),
		"user_id":    principal.ID.String(),
	}

	return srv.createCheckout(ctx, principal, items, metadata)
}

func (srv *checkoutService) createCheckout(ctx context.Context, principal *entity.Principal, items []*entity.CartItem, metadata map[string]string) (*usecase.CheckoutRedirectOutput, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	lineItems, err := srv.buildLineItems(ctx, items)
	if err != nil {
		return nil, err
	}

	session, err := srv.gateway.CreateCheckoutSession(ctx, &service.CreateCheckoutSessionInput{
		LineItems:         lineItems,
		SuccessURL:        srv.successURL,
		CancelURL:         srv.cancelURL,
		ClientReferenceID: principal.ID.String(),
		CustomerEmail:     principal.Email,
		Metadata:          metadata,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create checkout session", slog.Any("error", err))

		return nil, domainerrors.ErrPaymentGatewayFailed.WrapMessage("create checkout session")
	}

	srv.log(ctx).Info("Checkout session created",
		slog.String("sessionID", session.ID),
		slog.Int("lineItems", len(lineItems)))

	return &usecase.CheckoutRedirectOutput{SessionID: session.ID, URL: session.URL}, nil
}

// buildLineItems resolves every cart row against the catalog. Unlike the
// ledger append path, this is all-or-nothing: a single missing article fails
// the whole batch so the gateway never charges for a silent subset.
func (srv *checkoutService) buildLineItems(ctx context.Context, items []*entity.CartItem) ([]service.CheckoutLineItem, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ArticleID)
	}

	articles, err := srv.articleRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve articles")
	}
	byID := make(map[uuid.UUID]*entity.Article, len(articles))
	for _, article := range articles {
		byID[article.ID] = article
	}

	lineItems := make([]service.CheckoutLineItem, 0, len(items))
	for _, item := range items {
		article, ok := byID[item.ArticleID]
		if !ok {
			return nil, domainerrors.ErrArticleNotFound.WithDetails(item.ArticleID.String())
		}

		lineItem := service.CheckoutLineItem{
			Name:        article.Title,
			Description: article.Description,
			UnitAmount:  toMinorUnits(article.Price),
			Currency:    srv.currency,
			Quantity:    int64(item.Quantity),
		}
		if isAbsoluteURL(article.ImageURL) {
			lineItem.ImageURLs = []string{article.ImageURL}
		}
		lineItems = append(lineItems, lineItem)
	}

	return lineItems, nil
}

// toMinorUnits converts a decimal price to the smallest currency unit,
// rounding halves away from zero.
func toMinorUnits(price decimal.Decimal) int64 {
	return price.Shift(2).Round(0).IntPart()
}

// isAbsoluteURL reports whether the gateway would accept the image URL.
// Relative catalog paths are silently dropped rather than rejected.
func isAbsoluteURL(rawURL string) bool {
	return strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://")
}

// VerifySession confirms a checkout session's outcome against the ledger
// rows the webhook already wrote. It never creates rows, so repeated client
// polling cannot double-credit a purchase.
func (srv *checkoutService) VerifySession(ctx context.Context, principal *entity.Principal, sessionID string) (*usecase.VerifySessionOutput, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if sessionID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("session_id is required")
	}

	session, err := srv.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		srv.log(ctx).Error("Failed to retrieve checkout session",
			slog.String("sessionID", sessionID), slog.Any("error", err))

		return nil, domainerrors.ErrPaymentGatewayFailed.WrapMessage("retrieve checkout session")
	}

	if session.Metadata["user_id"] != principal.ID.String() {
		return nil, domainerrors.ErrNotAuthorized
	}

	if session.PaymentStatus != service.PaymentStatusPaid {
		return &usecase.VerifySessionOutput{PaymentSuccessful: false}, nil
	}

	entries, err := srv.purchaseRepo.ListByOrderID(ctx, session.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ledger entries for session")
	}

	return &usecase.VerifySessionOutput{PaymentSuccessful: true, Entries: entries}, nil
}

// HandleWebhookEvent is the single ledger-writing path for gateway-confirmed
// payments: exactly one ledger row per purchased line, tagged with the
// session id, with the originating cart cleared in the same transaction.
func (srv *checkoutService) HandleWebhookEvent(ctx context.Context, event *usecase.WebhookEventInput) error {
	if event.Type != eventCheckoutCompleted {
		srv.log(ctx).Debug("Ignoring webhook event", slog.String("type", event.Type))

		return nil
	}
	if event.PaymentStatus != string(service.PaymentStatusPaid) {
		srv.log(ctx).Info("Ignoring unpaid session", slog.String("sessionID", event.SessionID))

		return nil
	}

	switch event.Metadata["scope"] {
	case checkoutScopeCompany:
		return srv.handleCompanyPayment(ctx, event)
	default:
		return srv.handleUserPayment(ctx, event)
	}
}

func (srv *checkoutService) handleUserPayment(ctx context.Context, event *usecase.WebhookEventInput) error {
	userID, err := uuid.Parse(event.Metadata["user_id"])
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("webhook metadata missing user_id")
	}

	count, err := srv.purchaseRepo.CountByOrderID(ctx, event.SessionID)
	if err != nil {
		return errors.Wrap(err, "failed to check ledger for session")
	}
	if count > 0 {
		srv.log(ctx).Info("Session already reconciled", slog.String("sessionID", event.SessionID))

		return nil
	}

	var created []*entity.PurchaseLedgerEntry
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		articleRepo := repoFactory.ArticleRepo()
		purchaseRepo := repoFactory.PurchaseRepo()

		items, err := cartRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}

		created, err = appendEntries(ctx, articleRepo, purchaseRepo, userID, items, event.SessionID)
		if err != nil {
			return err
		}

		if err := cartRepo.ClearUserCart(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to commit payment")
	}

	srv.afterPayment(ctx, event, userID, "", created)

	return nil
}

func (srv *checkoutService) handleCompanyPayment(ctx context.Context, event *usecase.WebhookEventInput) error {
	companyID, err := uuid.Parse(event.Metadata["company_id"])
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("webhook metadata missing company_id")
	}
	userID, err := uuid.Parse(event.Metadata["user_id"])
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("webhook metadata missing user_id")
	}

	count, err := srv.purchaseRepo.CountCompanyByOrderID(ctx, event.SessionID)
	if err != nil {
		return errors.Wrap(err, "failed to check company ledger for session")
	}
	if count > 0 {
		srv.log(ctx).Info("Session already reconciled", slog.String("sessionID", event.SessionID))

		return nil
	}

	var created []*entity.PurchaseLedgerEntry
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		articleRepo := repoFactory.ArticleRepo()
		purchaseRepo := repoFactory.PurchaseRepo()

		items, err := cartRepo.ListByCompany(ctx, companyID)
		if err != nil {
			return errors.Wrap(err, "failed to load company cart")
		}

		entries, err := buildLedgerEntries(ctx, articleRepo, userID, items, event.SessionID)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		companyEntries := make([]*entity.CompanyPurchaseLedgerEntry, 0, len(entries))
		for _, entry := range entries {
			companyEntries = append(companyEntries, &entity.CompanyPurchaseLedgerEntry{
				ID:           entry.ID,
				CompanyID:    companyID,
				UserID:       entry.UserID,
				ArticleID:    entry.ArticleID,
				Quantity:     entry.Quantity,
				UnitPrice:    entry.UnitPrice,
				PurchaseDate: entry.PurchaseDate,
				OrderID:      entry.OrderID,
				PaidAt:       entry.PaidAt,
			})
		}
		if err := purchaseRepo.CreateCompanyEntries(ctx, companyEntries); err != nil {
			return errors.Wrap(err, "failed to append company ledger entries")
		}

		if err := cartRepo.ClearCompanyCart(ctx, companyID); err != nil {
			return errors.Wrap(err, "failed to clear company cart")
		}
		created = entries

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to commit company payment")
	}

	srv.afterPayment(ctx, event, userID, companyID.String(), created)

	return nil
}

// afterPayment publishes the purchase event and notifies the buyer's
// devices. Both are best effort: failures are logged, never surfaced.
func (srv *checkoutService) afterPayment(ctx context.Context, event *usecase.WebhookEventInput, userID uuid.UUID, companyID string, created []*entity.PurchaseLedgerEntry) {
	if len(created) == 0 {
		return
	}

	total := decimal.Zero
	for _, entry := range created {
		if entry.UnitPrice != nil {
			total = total.Add(entry.UnitPrice.Mul(decimal.NewFromInt(int64(entry.Quantity))))
		}
	}

	purchaseEvent := &service.PurchaseEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:     event.SessionID,
		UserID:      userID.String(),
		CompanyID:   companyID,
		TotalAmount: total.String(),
		ItemCount:   len(created),
	}
	if err := srv.publisher.PublishPurchaseEvent(ctx, purchaseEvent); err != nil {
		srv.log(ctx).Error("Failed to publish purchase event",
			slog.String("sessionID", event.SessionID), slog.Any("error", err))
	}

	if srv.notifier == nil {
		return
	}

	devices, err := srv.deviceRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load devices for push", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	_, _, invalidTokens, err := srv.notifier.SendBatchNotification(ctx, tokens,
		"付款成功", "您的訂單已完成付款", map[string]string{"order_id": event.SessionID})
	if err != nil {
		srv.log(ctx).Error("Failed to send payment push", slog.Any("error", err))

		return
	}
	for _, token := range invalidTokens {
		if err := srv.deviceRepo.DeactivateByToken(ctx, token); err != nil {
			srv.log(ctx).Warn("Failed to deactivate stale device token", slog.Any("error", err))
		}
	}
}

// buildLedgerEntries materializes cart rows into ledger entries, skipping
// rows whose article no longer resolves. The unit price is captured here so
// later catalog edits cannot rewrite purchase history.
func buildLedgerEntries(ctx context.Context, articleRepo repository.ArticleRepository, userID uuid.UUID, items []*entity.CartItem, orderID string) ([]*entity.PurchaseLedgerEntry, error) {
	valid := make([]*entity.CartItem, 0, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		valid = append(valid, item)
		ids = append(ids, item.ArticleID)
	}
	if len(valid) == 0 {
		return nil, nil
	}

	articles, err := articleRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve articles")
	}
	byID := make(map[uuid.UUID]*entity.Article, len(articles))
	for _, article := range articles {
		byID[article.ID] = article
	}

	now := time.Now()
	entries := make([]*entity.PurchaseLedgerEntry, 0, len(valid))
	for _, item := range valid {
		article, ok := byID[item.ArticleID]
		if !ok {
			// Lenient by contract: a vanished article drops its line, the
			// rest of the batch still commits.
			continue
		}
		price := article.Price
		paidAt := now
		entries = append(entries, &entity.PurchaseLedgerEntry{
			ID:           uuid.New(),
			UserID:       userID,
			ArticleID:    item.ArticleID,
			Quantity:     item.Quantity,
			UnitPrice:    &price,
			PurchaseDate: now,
			OrderID:      orderID,
			PaidAt:       &paidAt,
		})
	}

	return entries, nil
}

// appendEntries builds and persists user-scoped ledger entries in one step.
func appendEntries(ctx context.Context, articleRepo repository.ArticleRepository, purchaseRepo repository.PurchaseRepository, userID uuid.UUID, items []*entity.CartItem, orderID string) ([]*entity.PurchaseLedgerEntry, error) {
	entries, err := buildLedgerEntries(ctx, articleRepo, userID, items, orderID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	if err := purchaseRepo.CreateEntries(ctx, entries); err != nil {
		return nil, errors.Wrap(err, "failed to append ledger entries")
	}

	return entries, nil
}
