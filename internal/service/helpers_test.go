package service_test

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/recruitly/internal/config"
	"github.com/deppfellow/recruitly/internal/lib/email"
	"github.com/deppfellow/recruitly/internal/lib/payment"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/repository"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var userCols = []string{
	"id", "email", "auth_id", "full_name", "phone", "role", "plan_id", "customer_id",
	"subscription_id", "subscription_status", "subscription_ends_at", "created_at", "updated_at",
}

var planCols = []string{
	"id", "name", "description", "price", "currency", "interval", "job_post_limit",
	"profile_view_limit", "provider_plan_id", "active", "created_at", "updated_at",
}

var jobCols = []string{
	"id", "employer_id", "agency_id", "title", "description", "location", "employment_type",
	"salary_min", "salary_max", "skills", "status", "deadline", "created_at", "updated_at",
}

type userState struct {
	planID         *int64
	customerID     *string
	subscriptionID *string
	status         *string
	endsAt         *time.Time
}

func userRows(id int64, email string, st userState) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(userCols).AddRow(
		id, email, (*string)(nil), "Ann Lee", (*string)(nil), model.RoleEmployer, st.planID, st.customerID,
		st.subscriptionID, st.status, st.endsAt, now, now,
	)
}

func planRows(id int64, name string, jobLimit, viewLimit int, providerID *string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(planCols).AddRow(
		id, name, (*string)(nil), "499.00", "INR", "monthly", jobLimit, viewLimit, providerID, true, now, now,
	)
}

func jobRows(id int64, status string) *pgxmock.Rows {
	now := time.Now()
	employerID := int64(9)
	return pgxmock.NewRows(jobCols).AddRow(
		id, &employerID, (*int64)(nil), "Backend Engineer", "Go and SQL", (*string)(nil), (*string)(nil),
		(*int64)(nil), (*int64)(nil), json.RawMessage(`["go"]`), status, (*time.Time)(nil), now, now,
	)
}

type fakeQueue struct {
	mu   sync.Mutex
	sent []email.Message
	err  error
}

func (q *fakeQueue) EnqueueEmail(_ context.Context, msg email.Message, _ string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.sent = append(q.sent, msg)
	return nil
}

func (q *fakeQueue) templates() []email.Template {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]email.Template, 0, len(q.sent))
	for _, m := range q.sent {
		out = append(out, m.Template)
	}
	return out
}

type fakeFiles struct {
	mu      sync.Mutex
	stored  map[string][]byte
	deleted []string
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{stored: map[string][]byte{}}
}

func (f *fakeFiles) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored[key] = data
	return nil
}

func (f *fakeFiles) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.stored, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeFiles) URL(key string) string {
	return "https://cdn.example.com/" + key
}

type fakeGateway struct {
	secret    string
	customers int
	cancelled []string
	err       error
}

func (g *fakeGateway) CreateCustomer(_ context.Context, name, _, _ string) (*payment.Customer, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.customers++
	return &payment.Customer{ID: "cust_1", Name: name}, nil
}

func (g *fakeGateway) CreateSubscription(_ context.Context, planID, customerID string, _ map[string]string) (*payment.Subscription, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &payment.Subscription{
		ID:         "sub_1",
		PlanID:     planID,
		CustomerID: customerID,
		Status:     model.SubscriptionStatusCreated,
		ShortURL:   "https://pay.example.com/sub_1",
	}, nil
}

func (g *fakeGateway) CancelSubscription(_ context.Context, id string) (*payment.Subscription, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.cancelled = append(g.cancelled, id)
	return &payment.Subscription{ID: id, Status: model.SubscriptionStatusCancelled}, nil
}

func (g *fakeGateway) ParseWebhook(body []byte, signature string) (*payment.WebhookEvent, error) {
	if err := payment.VerifySignature(g.secret, body, signature); err != nil {
		return nil, err
	}
	var event payment.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

type fixture struct {
	mock     pgxmock.PgxPoolIface
	queue    *fakeQueue
	files    *fakeFiles
	gateway  *fakeGateway
	deps     *service.Deps
	services *service.Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	logger := zerolog.Nop()
	f := &fixture{
		mock:    mock,
		queue:   &fakeQueue{},
		files:   newFakeFiles(),
		gateway: &fakeGateway{secret: "whsec"},
	}
	f.deps = &service.Deps{
		Config: &config.Config{
			Reminders: config.RemindersConfig{
				ExpiryWindow:            72 * time.Hour,
				IncompleteProfileCutoff: 80,
			},
		},
		Logger:   &logger,
		Repos:    repository.New(mock),
		Emails:   f.queue,
		Files:    f.files,
		Payments: f.gateway,
	}
	f.services = service.New(f.deps)
	return f
}

func ptr[T any](v T) *T {
	return &v
}
