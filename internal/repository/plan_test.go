package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planCols = []string{
	"id", "name", "description", "price", "currency", "interval", "job_post_limit",
	"profile_view_limit", "provider_plan_id", "active", "created_at", "updated_at",
}

func planRow(rows *pgxmock.Rows, id int64, name, price string, now time.Time) *pgxmock.Rows {
	providerID := "plan_" + name
	return rows.AddRow(id, name, (*string)(nil), price, "INR", "monthly", 5, 50, &providerID, true, now, now)
}

func TestPlanRepository_Create(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO subscription_plans").
		WithArgs("pro", (*string)(nil), "499.99", "INR", "monthly", 5, 50, (*string)(nil), true).
		WillReturnRows(planRow(pgxmock.NewRows(planCols), 1, "pro", "499.99", now))

	plan, err := repository.NewPlanRepository(mock).Create(context.Background(), &model.CreatePlanRequest{
		Name:             "pro",
		Price:            decimal.RequireFromString("499.99"),
		Currency:         "INR",
		Interval:         "monthly",
		JobPostLimit:     5,
		ProfileViewLimit: 50,
	})

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("499.99").Equal(plan.Price))
	assert.Equal(t, "plan_pro", *plan.ProviderPlanID)
}

func TestPlanRepository_List(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(planCols)
	planRow(rows, 1, "basic", "0.00", now)
	planRow(rows, 2, "pro", "499.99", now)
	mock.ExpectQuery("FROM subscription_plans WHERE active ORDER BY price").WillReturnRows(rows)

	plans, err := repository.NewPlanRepository(mock).List(context.Background(), false)

	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "basic", plans[0].Name)
	assert.True(t, plans[0].Price.IsZero())
}

func TestPlanRepository_GetForOwner(t *testing.T) {
	mock := newMock(t)
	now := time.Now()
	employerID := int64(8)

	mock.ExpectQuery("JOIN subscription_plans p ON p.id = u.plan_id").
		WithArgs(&employerID, (*int64)(nil)).
		WillReturnRows(planRow(pgxmock.NewRows(planCols), 2, "pro", "499.99", now))

	plan, err := repository.NewPlanRepository(mock).GetForOwner(context.Background(), &employerID, nil)

	require.NoError(t, err)
	assert.Equal(t, 5, plan.JobPostLimit)
}

func TestPlanRepository_InvalidPrice(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("FROM subscription_plans WHERE id").
		WithArgs(int64(2)).
		WillReturnRows(planRow(pgxmock.NewRows(planCols), 2, "pro", "abc", now))

	_, err := repository.NewPlanRepository(mock).GetByID(context.Background(), 2)
	assert.ErrorContains(t, err, "invalid plan price")
}
