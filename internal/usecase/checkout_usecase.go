package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutRedirectOutput carries the hosted checkout session the client is
// redirected to.
type CheckoutRedirectOutput struct {
	SessionID string
	URL       string
}

// VerifySessionOutput reports the reconciled outcome of a checkout session.
// Entries are the ledger rows already created by the webhook path; this
// output never reflects rows created during verification.
type VerifySessionOutput struct {
	PaymentSuccessful bool
	Entries           []*entity.PurchaseLedgerEntry
}

// WebhookEventInput is the parsed, signature-verified gateway event handed
// to the checkout usecase by the delivery layer.
type WebhookEventInput struct {
	Type              string
	SessionID         string
	PaymentStatus     string
	ClientReferenceID string
	Metadata          map[string]string
}

// CheckoutUsecase bridges carts to the hosted payment gateway and
// reconciles completed sessions back into the purchase ledger.
type CheckoutUsecase interface {
	// CreateCartCheckout builds line items from the personal cart and opens
	// a gateway session. Fails when any cart article no longer exists.
	CreateCartCheckout(ctx context.Context, principal *entity.Principal) (*CheckoutRedirectOutput, error)

	// CreateCompanyCheckout does the same over a company's shared cart.
	CreateCompanyCheckout(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) (*CheckoutRedirectOutput, error)

	// VerifySession confirms a session's outcome against existing ledger
	// rows. It never creates rows and is safe to call repeatedly.
	VerifySession(ctx context.Context, principal *entity.Principal, sessionID string) (*VerifySessionOutput, error)

	// HandleWebhookEvent is the ledger writer: on a paid session it creates
	// the ledger rows once, clears the originating cart atomically,
	// publishes a purchase event and notifies the buyer's devices.
	HandleWebhookEvent(ctx context.Context, event *WebhookEventInput) error
}
