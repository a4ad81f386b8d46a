package model

import "time"

const (
	SubscriptionStatusCreated   = "created"
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusHalted    = "halted"
)

type CreateSubscriptionRequest struct {
	UserID int64 `json:"user_id" validate:"required,min=1"`
	PlanID int64 `json:"plan_id" validate:"required,min=1"`
}

func (r *CreateSubscriptionRequest) Validate() error {
	return validate.Struct(r)
}

// UserIDParam binds the :user_id path parameter.
type UserIDParam struct {
	UserID int64 `param:"user_id" json:"-" validate:"required,min=1"`
}

func (p *UserIDParam) Validate() error {
	return validate.Struct(p)
}

// Subscription is the billing state stored on a user row.
type Subscription struct {
	UserID         int64      `json:"user_id"`
	PlanID         *int64     `json:"plan_id"`
	CustomerID     *string    `json:"customer_id"`
	SubscriptionID *string    `json:"subscription_id"`
	Status         *string    `json:"status"`
	EndsAt         *time.Time `json:"ends_at"`
	// CheckoutURL is where the user authorizes the first payment.
	CheckoutURL string `json:"checkout_url,omitempty"`
}
