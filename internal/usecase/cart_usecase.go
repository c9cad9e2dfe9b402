package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartLine pairs a cart row with its catalog snapshot for display.
// Article is nil when the catalog item was deleted after the row was added.
type CartLine struct {
	Item    *entity.CartItem
	Article *entity.Article
}

// AddCartItemInput adds an article to the personal or company cart.
type AddCartItemInput struct {
	CompanyID *uuid.UUID
	ArticleID uuid.UUID
	Quantity  int
}

// UpdateCartItemInput changes the quantity of one cart row.
type UpdateCartItemInput struct {
	ItemID   uuid.UUID
	Quantity int
}

// CommitCartOutput reports the ledger rows created by committing a cart.
type CommitCartOutput struct {
	Entries []*entity.PurchaseLedgerEntry
}

// CartUsecase manages the pending cart rows feeding the purchase ledger.
type CartUsecase interface {
	GetCart(ctx context.Context, principal *entity.Principal) ([]*CartLine, error)
	GetCompanyCart(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) ([]*CartLine, error)
	AddItem(ctx context.Context, principal *entity.Principal, input *AddCartItemInput) (*entity.CartItem, error)
	UpdateItem(ctx context.Context, principal *entity.Principal, input *UpdateCartItemInput) (*entity.CartItem, error)
	RemoveItem(ctx context.Context, principal *entity.Principal, itemID uuid.UUID) error

	// CommitCart turns the personal cart into ledger rows and clears it, both
	// inside one transaction. Cart rows whose article no longer exists are
	// skipped; an empty remainder yields an empty output, not an error.
	CommitCart(ctx context.Context, principal *entity.Principal, paymentRef string) (*CommitCartOutput, error)
}
