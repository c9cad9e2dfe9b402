package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddCartItemRequest represents the request body for adding a cart item
type AddCartItemRequest struct {
	CompanyID *uuid.UUID `json:"company_id"`
	ArticleID uuid.UUID  `json:"article_id" validate:"required"`
	Quantity  int        `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemRequest represents the request body for changing a cart row quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CommitCartRequest represents the request body for committing the cart
type CommitCartRequest struct {
	PaymentRef string `json:"payment_ref"`
}

// GetCart returns the caller's personal cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	lines, err := h.cartUC.GetCart(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lines, "Cart retrieved successfully")
}

// GetCompanyCart returns a company's shared cart.
func (h *CartHandler) GetCompanyCart(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid company id")
	}

	lines, err := h.cartUC.GetCompanyCart(c.Request().Context(), deliverycontext.GetPrincipal(c), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lines, "Company cart retrieved successfully")
}

// AddItem adds an article to the personal or company cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.cartUC.AddItem(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.AddCartItemInput{
		CompanyID: req.CompanyID,
		ArticleID: req.ArticleID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Cart item added successfully")
}

// UpdateItem changes the quantity of one cart row.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item id")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.cartUC.UpdateItem(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.UpdateCartItemInput{
		ItemID:   itemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Cart item updated successfully")
}

// RemoveItem deletes one cart row.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item id")
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), deliverycontext.GetPrincipal(c), itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart item removed successfully")
}

// CommitCart turns the personal cart into ledger rows without going through
// the hosted payment gateway.
func (h *CartHandler) CommitCart(c echo.Context) error {
	var req CommitCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid commit input")
	}

	output, err := h.cartUC.CommitCart(c.Request().Context(), deliverycontext.GetPrincipal(c), req.PaymentRef)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Entries, "Cart committed successfully")
}
