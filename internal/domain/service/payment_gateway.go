package service

import "context"

// CheckoutLineItem is one line of a hosted checkout session. UnitAmount is in
// the smallest currency unit.
type CheckoutLineItem struct {
	Name        string
	Description string
	ImageURLs   []string
	UnitAmount  int64
	Currency    string
	Quantity    int64
}

// CreateCheckoutSessionInput carries everything needed to open a hosted
// checkout session with the payment provider.
type CreateCheckoutSessionInput struct {
	LineItems         []CheckoutLineItem
	SuccessURL        string
	CancelURL         string
	ClientReferenceID string
	CustomerEmail     string
	Metadata          map[string]string
}

// PaymentStatus is the provider-side payment state of a checkout session.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// CheckoutSession is the provider's view of a hosted checkout session.
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus PaymentStatus
	Metadata      map[string]string
}

// PaymentGateway defines the interface for the hosted checkout provider.
type PaymentGateway interface {
	// CreateCheckoutSession opens a hosted checkout session and returns it,
	// including the redirect URL the client is sent to.
	CreateCheckoutSession(ctx context.Context, input *CreateCheckoutSessionInput) (*CheckoutSession, error)

	// RetrieveSession fetches the current state of a checkout session.
	RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
