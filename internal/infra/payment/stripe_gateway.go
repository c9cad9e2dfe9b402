// Package payment implements the hosted checkout gateway against the Stripe
// REST API.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAPIBase = "https://api.stripe.com"

type stripeGateway struct {
	secretKey  string
	apiBase    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds the dependencies of the Stripe gateway, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewStripeGateway creates a Stripe-backed service.PaymentGateway.
func NewStripeGateway(params Params) (service.PaymentGateway, error) {
	cfg := params.Config.Stripe
	if cfg == nil || cfg.SecretKey == "" {
		return nil, errors.New("stripe secret key is not configured")
	}

	apiBase := cfg.APIBase
	if apiBase == "" {
		apiBase = defaultAPIBase
	}

	return &stripeGateway{
		secretKey: cfg.SecretKey,
		apiBase:   strings.TrimSuffix(apiBase, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: params.Logger,
	}, nil
}

// checkoutSessionResponse is the subset of Stripe's Checkout Session object we
// consume.
type checkoutSessionResponse struct {
	ID                string            `json:"id"`
	URL               string            `json:"url"`
	PaymentStatus     string            `json:"payment_status"`
	ClientReferenceID string            `json:"client_reference_id"`
	Metadata          map[string]string `json:"metadata"`
}

type stripeErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateCheckoutSession opens a hosted checkout session.
func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, input *service.CreateCheckoutSessionInput) (*service.CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", input.SuccessURL)
	form.Set("cancel_url", input.CancelURL)
	if input.ClientReferenceID != "" {
		form.Set("client_reference_id", input.ClientReferenceID)
	}
	if input.CustomerEmail != "" {
		form.Set("customer_email", input.CustomerEmail)
	}
	for key, value := range input.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	for i, item := range input.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[quantity]", strconv.FormatInt(item.Quantity, 10))
		form.Set(prefix+"[price_data][currency]", item.Currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		if item.Description != "" {
			form.Set(prefix+"[price_data][product_data][description]", item.Description)
		}
		for j, imageURL := range item.ImageURLs {
			form.Set(fmt.Sprintf("%s[price_data][product_data][images][%d]", prefix, j), imageURL)
		}
	}

	var resp checkoutSessionResponse
	if err := g.do(ctx, http.MethodPost, "/v1/checkout/sessions", form, &resp); err != nil {
		return nil, err
	}

	g.logger.Info("Stripe checkout session created",
		slog.String("sessionID", resp.ID),
		slog.Int("lineItems", len(input.LineItems)))

	return toCheckoutSession(&resp), nil
}

// RetrieveSession fetches the current state of a checkout session.
func (g *stripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	var resp checkoutSessionResponse
	path := "/v1/checkout/sessions/" + url.PathEscape(sessionID)
	if err := g.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	return toCheckoutSession(&resp), nil
}

func (g *stripeGateway) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, g.apiBase+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to build stripe request")
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "stripe request failed")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read stripe response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var stripeErr stripeErrorResponse
		if jsonErr := json.Unmarshal(payload, &stripeErr); jsonErr == nil && stripeErr.Error.Message != "" {
			return errors.Errorf("stripe error (%d %s): %s",
				resp.StatusCode, stripeErr.Error.Code, stripeErr.Error.Message)
		}

		return errors.Errorf("stripe returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrap(err, "failed to decode stripe response")
	}

	return nil
}

func toCheckoutSession(resp *checkoutSessionResponse) *service.CheckoutSession {
	metadata := resp.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	if resp.ClientReferenceID != "" {
		metadata["client_reference_id"] = resp.ClientReferenceID
	}

	return &service.CheckoutSession{
		ID:            resp.ID,
		URL:           resp.URL,
		PaymentStatus: service.PaymentStatus(resp.PaymentStatus),
		Metadata:      metadata,
	}
}
