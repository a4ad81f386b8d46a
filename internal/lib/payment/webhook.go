package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const SignatureHeader = "X-Webhook-Signature"

const (
	EventSubscriptionActivated = "subscription.activated"
	EventSubscriptionCharged   = "subscription.charged"
	EventSubscriptionCancelled = "subscription.cancelled"
	EventSubscriptionHalted    = "subscription.halted"
	EventPaymentFailed         = "payment.failed"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

type WebhookEvent struct {
	Event   string         `json:"event"`
	Payload WebhookPayload `json:"payload"`
}

type WebhookPayload struct {
	Subscription *struct {
		Entity Subscription `json:"entity"`
	} `json:"subscription,omitempty"`
	Payment *struct {
		Entity PaymentEntity `json:"entity"`
	} `json:"payment,omitempty"`
}

type PaymentEntity struct {
	ID               string `json:"id"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	Status           string `json:"status"`
	SubscriptionID   string `json:"subscription_id"`
	ErrorDescription string `json:"error_description"`
}

// SubscriptionID returns the subscription the event refers to, looking at
// the payment entity when the subscription entity is absent.
func (e *WebhookEvent) SubscriptionID() string {
	if e.Payload.Subscription != nil && e.Payload.Subscription.Entity.ID != "" {
		return e.Payload.Subscription.Entity.ID
	}
	if e.Payload.Payment != nil {
		return e.Payload.Payment.Entity.SubscriptionID
	}
	return ""
}

// VerifySignature checks the hex encoded HMAC-SHA256 of body.
func VerifySignature(secret string, body []byte, signature string) error {
	if secret == "" || signature == "" {
		return ErrInvalidSignature
	}

	expected := Sign(secret, body)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature)))) {
		return ErrInvalidSignature
	}
	return nil
}

// ParseWebhook verifies and decodes a webhook body.
func (c *Client) ParseWebhook(body []byte, signature string) (*WebhookEvent, error) {
	if err := VerifySignature(c.webhookSecret, body, signature); err != nil {
		return nil, err
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("decode webhook: %w", err)
	}
	return &event, nil
}

// Sign returns the signature the provider would send for body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
