package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	articleRepo repository.ArticleRepository
	companyRepo repository.CompanyRepository
	guard       *authz.Guard
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ArticleRepo repository.ArticleRepository
	CompanyRepo repository.CompanyRepository
	Guard       *authz.Guard
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		articleRepo: params.ArticleRepo,
		companyRepo: params.CompanyRepo,
		guard:       params.Guard,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the principal's personal cart with catalog snapshots.
func (srv *cartService) GetCart(ctx context.Context, principal *entity.Principal) ([]*usecase.CartLine, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	items, err := srv.cartRepo.ListByUser(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return srv.toCartLines(ctx, items)
}

// GetCompanyCart returns a company's shared cart; members and the owner only.
func (srv *cartService) GetCompanyCart(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) ([]*usecase.CartLine, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err := srv.authorizeCompany(ctx, principal, companyID, authz.ActionViewCompany); err != nil {
		return nil, err
	}

	items, err := srv.cartRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load company cart")
	}

	return srv.toCartLines(ctx, items)
}

// AddItem puts an article into the personal or company cart, merging
// quantities with an existing row for the same article.
func (srv *cartService) AddItem(ctx context.Context, principal *entity.Principal, input *usecase.AddCartItemInput) (*entity.CartItem, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	if _, err := srv.articleRepo.FindByID(ctx, input.ArticleID); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article")
	}

	if input.CompanyID != nil {
		if err := srv.authorizeCompany(ctx, principal, *input.CompanyID, authz.ActionViewCompany); err != nil {
			return nil, err
		}
	}

	item := &entity.CartItem{
		ID:        uuid.New(),
		UserID:    principal.ID,
		CompanyID: input.CompanyID,
		ArticleID: input.ArticleID,
		Quantity:  input.Quantity,
	}
	if err := srv.cartRepo.Upsert(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to upsert cart item")
	}

	srv.log(ctx).Info("Cart item added",
		slog.String("articleID", input.ArticleID.String()),
		slog.Int("quantity", input.Quantity))

	return item, nil
}

// UpdateItem changes the quantity of one cart row the principal may touch.
func (srv *cartService) UpdateItem(ctx context.Context, principal *entity.Principal, input *usecase.UpdateCartItemInput) (*entity.CartItem, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	item, err := srv.findOwnedItem(ctx, principal, input.ItemID)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, item.ID, input.Quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item")
	}
	item.Quantity = input.Quantity

	return item, nil
}

// RemoveItem deletes one cart row the principal may touch.
func (srv *cartService) RemoveItem(ctx context.Context, principal *entity.Principal, itemID uuid.UUID) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	item, err := srv.findOwnedItem(ctx, principal, itemID)
	if err != nil {
		return err
	}

	if err := srv.cartRepo.Remove(ctx, item.ID); err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// CommitCart turns the personal cart into ledger rows and clears it inside
// one transaction: a concurrent reader never sees the cart empty without
// the ledger rows present, nor the reverse.
func (srv *cartService) CommitCart(ctx context.Context, principal *entity.Principal, paymentRef string) (*usecase.CommitCartOutput, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if paymentRef == "" {
		paymentRef = "direct-" + uuid.NewString()
	}

	var created []*entity.PurchaseLedgerEntry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		articleRepo := repoFactory.ArticleRepo()
		purchaseRepo := repoFactory.PurchaseRepo()

		items, err := cartRepo.ListByUser(ctx, principal.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}

		created, err = appendEntries(ctx, articleRepo, purchaseRepo, principal.ID, items, paymentRef)
		if err != nil {
			return err
		}

		if err := cartRepo.ClearUserCart(ctx, principal.ID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to commit cart")
	}

	srv.log(ctx).Info("Cart committed",
		slog.String("paymentRef", paymentRef),
		slog.Int("entries", len(created)))

	return &usecase.CommitCartOutput{Entries: created}, nil
}

func (srv *cartService) toCartLines(ctx context.Context, items []*entity.CartItem) ([]*usecase.CartLine, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ArticleID)
	}

	byID := make(map[uuid.UUID]*entity.Article, len(ids))
	if len(ids) > 0 {
		articles, err := srv.articleRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load cart articles")
		}
		for _, article := range articles {
			byID[article.ID] = article
		}
	}

	lines := make([]*usecase.CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, &usecase.CartLine{Item: item, Article: byID[item.ArticleID]})
	}

	return lines, nil
}

func (srv *cartService) findOwnedItem(ctx context.Context, principal *entity.Principal, itemID uuid.UUID) (*entity.CartItem, error) {
	item, err := srv.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	if item.CompanyID != nil {
		if err := srv.authorizeCompany(ctx, principal, *item.CompanyID, authz.ActionViewCompany); err != nil {
			return nil, err
		}

		return item, nil
	}
	if item.UserID != principal.ID {
		return nil, domainerrors.ErrNotAuthorized
	}

	return item, nil
}

func (srv *cartService) authorizeCompany(ctx context.Context, principal *entity.Principal, companyID uuid.UUID, action authz.Action) error {
	company, err := srv.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return domainerrors.ErrCompanyNotFound
		}

		return errors.Wrap(err, "failed to find company")
	}

	membership, err := srv.companyRepo.FindMembership(ctx, companyID, principal.ID)
	if err != nil && !errors.Is(err, repository.ErrMembershipNotFound) {
		return errors.Wrap(err, "failed to find membership")
	}

	return srv.guard.Authorize(principal, action, authz.Resource{
		Company:    company,
		Membership: membership,
	}).Err()
}
