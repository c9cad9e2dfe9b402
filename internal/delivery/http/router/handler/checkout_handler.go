package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/infra/payment"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for checkout-related handlers.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	cfg        *config.Config
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		cfg:        params.Config,
		logger:     params.Logger,
	}
}

// webhookEvent is the envelope of a Stripe webhook payload.
type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID                string            `json:"id"`
			PaymentStatus     string            `json:"payment_status"`
			ClientReferenceID string            `json:"client_reference_id"`
			Metadata          map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// CreateCartCheckout opens a hosted checkout session over the personal cart.
func (h *CheckoutHandler) CreateCartCheckout(c echo.Context) error {
	output, err := h.checkoutUC.CreateCartCheckout(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"session_id": output.SessionID,
		"url":        output.URL,
	}, "Checkout session created successfully")
}

// CreateCompanyCheckoutRequest names the company whose cart is checked out.
type CreateCompanyCheckoutRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

// CreateCompanyCheckout opens a hosted checkout session over a company cart.
func (h *CheckoutHandler) CreateCompanyCheckout(c echo.Context) error {
	var req CreateCompanyCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid company id")
	}

	output, err := h.checkoutUC.CreateCompanyCheckout(c.Request().Context(), deliverycontext.GetPrincipal(c), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"session_id": output.SessionID,
		"url":        output.URL,
	}, "Checkout session created successfully")
}

// VerifySession reconciles a checkout session after the client returns from
// the gateway. It only confirms; ledger rows are written by the webhook.
func (h *CheckoutHandler) VerifySession(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Session id is required")
	}

	output, err := h.checkoutUC.VerifySession(c.Request().Context(), deliverycontext.GetPrincipal(c), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"payment_successful": output.PaymentSuccessful,
		"entries":            output.Entries,
	}, "Checkout session verified")
}

// HandleWebhook receives gateway events. The signature is verified over the
// raw body before any parsing; invalid signatures are rejected outright.
func (h *CheckoutHandler) HandleWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read webhook body")
	}

	if h.cfg.Stripe != nil && h.cfg.Stripe.WebhookSecret != "" {
		signature := c.Request().Header.Get("Stripe-Signature")
		if err := payment.VerifyWebhookSignature(body, signature, h.cfg.Stripe.WebhookSecret, payment.DefaultWebhookTolerance); err != nil {
			h.logger.Warn("Rejected webhook with bad signature", slog.String("error", err.Error()))

			return response.BadRequest(c, "INVALID_SIGNATURE", "Webhook signature verification failed")
		}
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid webhook payload")
	}

	if err := h.checkoutUC.HandleWebhookEvent(c.Request().Context(), &usecase.WebhookEventInput{
		Type:              event.Type,
		SessionID:         event.Data.Object.ID,
		PaymentStatus:     event.Data.Object.PaymentStatus,
		ClientReferenceID: event.Data.Object.ClientReferenceID,
		Metadata:          event.Data.Object.Metadata,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Webhook processed")
}
