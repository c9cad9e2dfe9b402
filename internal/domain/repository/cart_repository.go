package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart row does not exist.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the persistence operations for shopping carts.
// Personal cart rows have a nil CompanyID; company cart rows carry one.
type CartRepository interface {
	// ListByUser returns the personal cart rows of a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// ListByCompany returns the shared cart rows of a company.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.CartItem, error)

	// FindByID retrieves a single cart row.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// Upsert adds the item or, when a row for the same article already exists
	// in the same cart, adds the quantities together.
	Upsert(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sets the quantity of a single cart row.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// Remove deletes a single cart row.
	Remove(ctx context.Context, id uuid.UUID) error

	// ClearUserCart deletes every personal cart row of a user.
	ClearUserCart(ctx context.Context, userID uuid.UUID) error

	// ClearCompanyCart deletes every shared cart row of a company.
	ClearCompanyCart(ctx context.Context, companyID uuid.UUID) error
}
