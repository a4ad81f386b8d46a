package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/deppfellow/recruitly/internal/lib/email"
	"github.com/deppfellow/recruitly/internal/lib/job"
	"github.com/deppfellow/recruitly/internal/lib/payment"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/repository"
)

var (
	codePlanNotSubscribable = "PLAN_NOT_SUBSCRIBABLE"
	codeNoSubscription      = "SUBSCRIPTION_NOT_FOUND"
)

type SubscriptionService struct {
	*Deps
}

// Create subscribes the user to the plan at the payment provider. The
// subscription starts in status created until the provider confirms the
// first charge through the webhook.
func (s *SubscriptionService) Create(ctx context.Context, req *model.CreateSubscriptionRequest) (*model.Subscription, error) {
	if err := s.requireGateway(); err != nil {
		return nil, err
	}

	user, err := s.Repos.User.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	plan, err := s.Repos.Plan.GetByID(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	if !plan.Active || plan.ProviderPlanID == nil || *plan.ProviderPlanID == "" {
		return nil, errs.NewBadRequestError("This plan is not available for subscription", true, &codePlanNotSubscribable, nil, nil)
	}

	customerID := ""
	if user.CustomerID != nil {
		customerID = *user.CustomerID
	}
	if customerID == "" {
		phone := ""
		if user.Phone != nil {
			phone = *user.Phone
		}
		customer, err := s.Payments.CreateCustomer(ctx, user.FullName, user.Email, phone)
		if err != nil {
			return nil, providerError(err)
		}
		if err := s.Repos.User.SetCustomerID(ctx, user.ID, customer.ID); err != nil {
			return nil, err
		}
		customerID = customer.ID
	}

	sub, err := s.Payments.CreateSubscription(ctx, *plan.ProviderPlanID, customerID, map[string]string{
		"user_id": strconv.FormatInt(user.ID, 10),
		"plan_id": strconv.FormatInt(plan.ID, 10),
	})
	if err != nil {
		return nil, providerError(err)
	}

	updated, err := s.Repos.User.StartSubscription(ctx, user.ID, plan.ID, sub.ID, model.SubscriptionStatusCreated)
	if err != nil {
		return nil, err
	}

	out := subscriptionOf(updated)
	out.CheckoutURL = sub.ShortURL
	return out, nil
}

func (s *SubscriptionService) Get(ctx context.Context, userID int64) (*model.Subscription, error) {
	user, err := s.Repos.User.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return subscriptionOf(user), nil
}

// Cancel cancels the user's subscription immediately and emails the user.
func (s *SubscriptionService) Cancel(ctx context.Context, userID int64) (*model.Subscription, error) {
	if err := s.requireGateway(); err != nil {
		return nil, err
	}

	user, err := s.Repos.User.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.SubscriptionID == nil || *user.SubscriptionID == "" {
		return nil, errs.NewBadRequestError("The user has no subscription", true, &codeNoSubscription, nil, nil)
	}

	if _, err := s.Payments.CancelSubscription(ctx, *user.SubscriptionID); err != nil {
		return nil, providerError(err)
	}

	updated, err := s.Repos.User.SetSubscriptionStatus(ctx, *user.SubscriptionID, model.SubscriptionStatusCancelled, nil)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, email.SubscriptionCancelled(updated.Email, updated.FullName, s.planName(ctx, updated.PlanID)), job.QueueCritical)
	return subscriptionOf(updated), nil
}

// HandleWebhook verifies and applies a payment provider event. Events for
// unknown subscriptions and unhandled event types are acknowledged and
// ignored.
func (s *SubscriptionService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if err := s.requireGateway(); err != nil {
		return err
	}

	event, err := s.Payments.ParseWebhook(body, signature)
	if errors.Is(err, payment.ErrInvalidSignature) {
		return errs.NewUnauthorizedError("Invalid webhook signature", true)
	}
	if err != nil {
		return errs.NewBadRequestError("Invalid webhook payload", true, nil, nil, nil)
	}

	log := s.log(ctx).With().Str("event", event.Event).Str("subscription_id", event.SubscriptionID()).Logger()

	subscriptionID := event.SubscriptionID()
	if subscriptionID == "" {
		log.Warn().Msg("webhook without subscription ignored")
		return nil
	}

	var user *model.User
	switch event.Event {
	case payment.EventSubscriptionActivated, payment.EventSubscriptionCharged:
		user, err = s.Repos.User.SetSubscriptionStatus(ctx, subscriptionID, model.SubscriptionStatusActive, currentEnd(event))
		if err == nil && event.Event == payment.EventSubscriptionActivated {
			s.notify(ctx, email.SubscriptionActivated(user.Email, user.FullName, s.planName(ctx, user.PlanID), user.SubscriptionEndsAt), job.QueueCritical)
		}

	case payment.EventSubscriptionCancelled:
		user, err = s.Repos.User.SetSubscriptionStatus(ctx, subscriptionID, model.SubscriptionStatusCancelled, nil)
		if err == nil {
			s.notify(ctx, email.SubscriptionCancelled(user.Email, user.FullName, s.planName(ctx, user.PlanID)), job.QueueCritical)
		}

	case payment.EventSubscriptionHalted:
		user, err = s.Repos.User.SetSubscriptionStatus(ctx, subscriptionID, model.SubscriptionStatusHalted, nil)

	case payment.EventPaymentFailed:
		user, err = s.Repos.User.GetBySubscriptionID(ctx, subscriptionID)
		if err == nil {
			reason := ""
			if event.Payload.Payment != nil {
				reason = event.Payload.Payment.Entity.ErrorDescription
			}
			s.notify(ctx, email.PaymentFailed(user.Email, user.FullName, reason), job.QueueCritical)
		}

	default:
		log.Info().Msg("webhook event ignored")
		return nil
	}

	if repository.IsNotFound(err) {
		log.Warn().Msg("webhook for unknown subscription ignored")
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().Int64("user_id", user.ID).Msg("webhook applied")
	return nil
}

func (s *SubscriptionService) requireGateway() error {
	if s.Payments == nil {
		return errs.NewServiceUnavailableError("Subscriptions are not available")
	}
	return nil
}

func (s *SubscriptionService) planName(ctx context.Context, planID *int64) string {
	if planID == nil {
		return ""
	}
	plan, err := s.Repos.Plan.GetByID(ctx, *planID)
	if err != nil {
		return ""
	}
	return plan.Name
}

func currentEnd(event *payment.WebhookEvent) *time.Time {
	if event.Payload.Subscription == nil || event.Payload.Subscription.Entity.CurrentEnd == nil {
		return nil
	}
	t := time.Unix(*event.Payload.Subscription.Entity.CurrentEnd, 0).UTC()
	return &t
}

func subscriptionOf(u *model.User) *model.Subscription {
	return &model.Subscription{
		UserID:         u.ID,
		PlanID:         u.PlanID,
		CustomerID:     u.CustomerID,
		SubscriptionID: u.SubscriptionID,
		Status:         u.SubscriptionStatus,
		EndsAt:         u.SubscriptionEndsAt,
	}
}

func providerError(err error) error {
	var pe *payment.ProviderError
	if errors.As(err, &pe) && pe.Detail.Description != "" {
		return errs.NewBadGatewayError("Payment provider error: " + pe.Detail.Description)
	}
	return errs.NewBadGatewayError("Payment provider is unavailable")
}
