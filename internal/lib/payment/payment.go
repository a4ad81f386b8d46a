// Package payment talks to the subscription billing provider over its REST
// API and verifies the webhooks it sends back.
package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/recruitly/internal/config"
	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.razorpay.com"

type Client struct {
	http          *resty.Client
	webhookSecret string
	billingCycles int
}

// ProviderError is the error body returned by the provider.
type ProviderError struct {
	Status int `json:"-"`
	Detail struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (e *ProviderError) Error() string {
	if e.Detail.Description == "" {
		return fmt.Sprintf("payment provider returned status %d", e.Status)
	}
	return fmt.Sprintf("payment provider returned status %d: %s (%s)", e.Status, e.Detail.Description, e.Detail.Code)
}

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateCustomerParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact,omitempty"`
	// FailExisting=0 returns the existing customer for a known email.
	FailExisting string `json:"fail_existing"`
}

type CreateSubscriptionParams struct {
	PlanID     string            `json:"plan_id"`
	CustomerID string            `json:"customer_id"`
	TotalCount int               `json:"total_count"`
	Notes      map[string]string `json:"notes,omitempty"`
}

type Subscription struct {
	ID         string `json:"id"`
	PlanID     string `json:"plan_id"`
	CustomerID string `json:"customer_id"`
	Status     string `json:"status"`
	ShortURL   string `json:"short_url"`
	CurrentEnd *int64 `json:"current_end"`
}

func New(cfg *config.PaymentConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(cfg.KeyID, cfg.KeySecret).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:          httpClient,
		webhookSecret: cfg.WebhookSecret,
		billingCycles: cfg.BillingCycles,
	}
}

func (c *Client) CreateCustomer(ctx context.Context, name, email, phone string) (*Customer, error) {
	var out Customer
	err := c.post(ctx, "/v1/customers", CreateCustomerParams{
		Name:         name,
		Email:        email,
		Contact:      phone,
		FailExisting: "0",
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &out, nil
}

// CreateSubscription subscribes customerID to the provider plan. The
// returned ShortURL is the hosted checkout page.
func (c *Client) CreateSubscription(ctx context.Context, providerPlanID, customerID string, notes map[string]string) (*Subscription, error) {
	var out Subscription
	err := c.post(ctx, "/v1/subscriptions", CreateSubscriptionParams{
		PlanID:     providerPlanID,
		CustomerID: customerID,
		TotalCount: c.billingCycles,
		Notes:      notes,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return &out, nil
}

func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	var out Subscription
	body := map[string]int{"cancel_at_cycle_end": 0}
	if err := c.post(ctx, "/v1/subscriptions/"+subscriptionID+"/cancel", body, &out); err != nil {
		return nil, fmt.Errorf("cancel subscription %s: %w", subscriptionID, err)
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	apiErr := &ProviderError{}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(out).
		SetError(apiErr).
		Post(path)
	if err != nil {
		return err
	}

	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return apiErr
	}
	return nil
}
