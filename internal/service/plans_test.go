package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/deppfellow/recruitly/internal/lib/cache"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withPlanCache(t *testing.T, f *fixture) (*service.Services, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f.deps.Cache = cache.New(client)
	f.deps.Config.Redis.PlanCacheTTL = time.Minute
	return service.New(f.deps), mr
}

func TestPlanService_ListIsCached(t *testing.T) {
	f := newFixture(t)
	services, mr := withPlanCache(t, f)

	f.mock.ExpectQuery("FROM subscription_plans WHERE active").
		WillReturnRows(planRows(1, "pro", 5, 50, ptr("plan_pro")))

	first, err := services.Plan.List(context.Background(), false)
	require.NoError(t, err)
	second, err := services.Plan.List(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, second, 1)
	assert.Equal(t, first[0].Name, second[0].Name)
	assert.True(t, decimal.RequireFromString("499").Equal(second[0].Price))
	assert.True(t, mr.Exists("recruitly:plans:active"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("recruitly:plans:active"))
}

func TestPlanService_ListInactiveBypassesCache(t *testing.T) {
	f := newFixture(t)
	services, mr := withPlanCache(t, f)

	f.mock.ExpectQuery("FROM subscription_plans ORDER BY").
		WillReturnRows(planRows(1, "legacy", 5, 50, nil))

	plans, err := services.Plan.List(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.False(t, mr.Exists("recruitly:plans:active"))
}

func TestPlanService_WritesInvalidateCache(t *testing.T) {
	f := newFixture(t)
	services, mr := withPlanCache(t, f)
	require.NoError(t, mr.Set("recruitly:plans:active", `[]`))

	f.mock.ExpectQuery("INSERT INTO subscription_plans").
		WithArgs("team", (*string)(nil), "1999", "INR", "monthly", 0, 0, (*string)(nil), true).
		WillReturnRows(planRows(3, "team", 20, 200, ptr("plan_team")))

	_, err := services.Plan.Create(context.Background(), &model.CreatePlanRequest{
		Name:     "team",
		Price:    decimal.RequireFromString("1999"),
		Currency: "INR",
		Interval: "monthly",
	})
	require.NoError(t, err)
	assert.False(t, mr.Exists("recruitly:plans:active"))

	require.NoError(t, mr.Set("recruitly:plans:active", `[]`))
	f.mock.ExpectExec("DELETE FROM subscription_plans").
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, services.Plan.Delete(context.Background(), 3))
	assert.False(t, mr.Exists("recruitly:plans:active"))
}

func TestPlanService_ListWithoutCache(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectQuery("FROM subscription_plans WHERE active").
		WillReturnRows(pgxmock.NewRows(planCols))

	plans, err := f.services.Plan.List(context.Background(), false)

	require.NoError(t, err)
	assert.NotNil(t, plans)
	assert.Empty(t, plans)
}
