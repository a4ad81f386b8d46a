package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/deppfellow/recruitly/internal/lib/email"
	"github.com/deppfellow/recruitly/internal/lib/payment"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestSubscriptionService_Create(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(userRows(1, "ann@example.com", userState{}))
	f.mock.ExpectQuery("FROM subscription_plans WHERE id").
		WithArgs(int64(2)).
		WillReturnRows(planRows(2, "pro", 5, 50, ptr("plan_pro")))
	f.mock.ExpectExec("UPDATE users SET customer_id").
		WithArgs(int64(1), "cust_1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	f.mock.ExpectQuery(`UPDATE users SET\s+plan_id`).
		WithArgs(int64(1), int64(2), "sub_1", model.SubscriptionStatusCreated).
		WillReturnRows(userRows(1, "ann@example.com", userState{
			planID:         ptr(int64(2)),
			customerID:     ptr("cust_1"),
			subscriptionID: ptr("sub_1"),
			status:         ptr(model.SubscriptionStatusCreated),
		}))

	sub, err := f.services.Subscription.Create(context.Background(), &model.CreateSubscriptionRequest{UserID: 1, PlanID: 2})

	require.NoError(t, err)
	assert.Equal(t, "sub_1", *sub.SubscriptionID)
	assert.Equal(t, model.SubscriptionStatusCreated, *sub.Status)
	assert.Equal(t, "https://pay.example.com/sub_1", sub.CheckoutURL)
	assert.Equal(t, 1, f.gateway.customers)
}

func TestSubscriptionService_CreateReusesCustomer(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(userRows(1, "ann@example.com", userState{customerID: ptr("cust_9")}))
	f.mock.ExpectQuery("FROM subscription_plans WHERE id").
		WithArgs(int64(2)).
		WillReturnRows(planRows(2, "pro", 5, 50, ptr("plan_pro")))
	f.mock.ExpectQuery(`UPDATE users SET\s+plan_id`).
		WithArgs(int64(1), int64(2), "sub_1", model.SubscriptionStatusCreated).
		WillReturnRows(userRows(1, "ann@example.com", userState{subscriptionID: ptr("sub_1")}))

	_, err := f.services.Subscription.Create(context.Background(), &model.CreateSubscriptionRequest{UserID: 1, PlanID: 2})

	require.NoError(t, err)
	assert.Zero(t, f.gateway.customers)
}

func TestSubscriptionService_CreatePlanWithoutProviderPlan(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(userRows(1, "ann@example.com", userState{}))
	f.mock.ExpectQuery("FROM subscription_plans WHERE id").
		WithArgs(int64(2)).
		WillReturnRows(planRows(2, "free", 1, 5, nil))

	_, err := f.services.Subscription.Create(context.Background(), &model.CreateSubscriptionRequest{UserID: 1, PlanID: 2})

	httpErr := requireStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "PLAN_NOT_SUBSCRIBABLE", httpErr.Code)
}

func TestSubscriptionService_GatewayDisabled(t *testing.T) {
	f := newFixture(t)
	f.deps.Payments = nil
	services := service.New(f.deps)

	_, err := services.Subscription.Create(context.Background(), &model.CreateSubscriptionRequest{UserID: 1, PlanID: 2})
	requireStatus(t, err, http.StatusServiceUnavailable)

	err = services.Subscription.HandleWebhook(context.Background(), []byte(`{}`), "sig")
	requireStatus(t, err, http.StatusServiceUnavailable)
}

func TestSubscriptionService_Cancel(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(userRows(1, "ann@example.com", userState{subscriptionID: ptr("sub_1")}))
	f.mock.ExpectQuery(`UPDATE users SET\s+subscription_status`).
		WithArgs("sub_1", model.SubscriptionStatusCancelled, pgxmock.AnyArg()).
		WillReturnRows(userRows(1, "ann@example.com", userState{
			planID:         ptr(int64(2)),
			subscriptionID: ptr("sub_1"),
			status:         ptr(model.SubscriptionStatusCancelled),
		}))
	f.mock.ExpectQuery("FROM subscription_plans WHERE id").
		WithArgs(int64(2)).
		WillReturnRows(planRows(2, "pro", 5, 50, ptr("plan_pro")))

	sub, err := f.services.Subscription.Cancel(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, model.SubscriptionStatusCancelled, *sub.Status)
	assert.Equal(t, []string{"sub_1"}, f.gateway.cancelled)
	assert.Equal(t, []email.Template{email.TemplateSubscriptionCancelled}, f.queue.templates())
	assert.Equal(t, "pro", f.queue.sent[0].Data["PlanName"])
}

func TestSubscriptionService_CancelWithoutSubscription(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(userRows(1, "ann@example.com", userState{}))

	_, err := f.services.Subscription.Cancel(context.Background(), 1)

	httpErr := requireStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "SUBSCRIPTION_NOT_FOUND", httpErr.Code)
	assert.Empty(t, f.gateway.cancelled)
}

func TestSubscriptionService_HandleWebhook(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		setup         func(m pgxmock.PgxPoolIface)
		wantTemplates []email.Template
	}{
		{
			name: "activated",
			body: `{"event":"subscription.activated","payload":{"subscription":{"entity":{"id":"sub_1","current_end":1767225600}}}}`,
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(`UPDATE users SET\s+subscription_status`).
					WithArgs("sub_1", model.SubscriptionStatusActive, pgxmock.AnyArg()).
					WillReturnRows(userRows(1, "ann@example.com", userState{planID: ptr(int64(2))}))
				m.ExpectQuery("FROM subscription_plans WHERE id").
					WithArgs(int64(2)).
					WillReturnRows(planRows(2, "pro", 5, 50, ptr("plan_pro")))
			},
			wantTemplates: []email.Template{email.TemplateSubscriptionActivated},
		},
		{
			name: "charged renews without email",
			body: `{"event":"subscription.charged","payload":{"subscription":{"entity":{"id":"sub_1","current_end":1769904000}}}}`,
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(`UPDATE users SET\s+subscription_status`).
					WithArgs("sub_1", model.SubscriptionStatusActive, pgxmock.AnyArg()).
					WillReturnRows(userRows(1, "ann@example.com", userState{}))
			},
		},
		{
			name: "halted",
			body: `{"event":"subscription.halted","payload":{"subscription":{"entity":{"id":"sub_1"}}}}`,
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(`UPDATE users SET\s+subscription_status`).
					WithArgs("sub_1", model.SubscriptionStatusHalted, pgxmock.AnyArg()).
					WillReturnRows(userRows(1, "ann@example.com", userState{}))
			},
		},
		{
			name: "payment failed",
			body: `{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_1","subscription_id":"sub_1","error_description":"card declined"}}}}`,
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("FROM users WHERE subscription_id").
					WithArgs("sub_1").
					WillReturnRows(userRows(1, "ann@example.com", userState{}))
			},
			wantTemplates: []email.Template{email.TemplatePaymentFailed},
		},
		{
			name: "unknown subscription is acknowledged",
			body: `{"event":"subscription.cancelled","payload":{"subscription":{"entity":{"id":"sub_x"}}}}`,
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(`UPDATE users SET\s+subscription_status`).
					WithArgs("sub_x", model.SubscriptionStatusCancelled, pgxmock.AnyArg()).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:  "unhandled event",
			body:  `{"event":"invoice.paid","payload":{"subscription":{"entity":{"id":"sub_1"}}}}`,
			setup: func(m pgxmock.PgxPoolIface) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f.mock)

			body := []byte(tt.body)
			err := f.services.Subscription.HandleWebhook(context.Background(), body, payment.Sign("whsec", body))

			require.NoError(t, err)
			if tt.wantTemplates == nil {
				assert.Empty(t, f.queue.templates())
			} else {
				assert.Equal(t, tt.wantTemplates, f.queue.templates())
			}
		})
	}
}

func TestSubscriptionService_HandleWebhookRejectsBadSignature(t *testing.T) {
	f := newFixture(t)

	body := []byte(`{"event":"subscription.activated"}`)
	err := f.services.Subscription.HandleWebhook(context.Background(), body, payment.Sign("other", body))

	requireStatus(t, err, http.StatusUnauthorized)
}
