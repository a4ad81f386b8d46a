package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/recruitly/internal/lib/cron"
	"github.com/deppfellow/recruitly/internal/lib/email"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderService_SubscriptionExpiry(t *testing.T) {
	f := newFixture(t)
	endsAt := time.Now().Add(48 * time.Hour)
	planID := int64(2)
	now := time.Now()

	rows := pgxmock.NewRows(userCols).
		AddRow(int64(1), "ann@example.com", (*string)(nil), "Ann Lee", (*string)(nil), model.RoleEmployer, &planID, (*string)(nil),
			ptr("sub_1"), ptr(model.SubscriptionStatusActive), &endsAt, now, now).
		AddRow(int64(2), "bo@example.com", (*string)(nil), "Bo Chen", (*string)(nil), model.RoleAgency, &planID, (*string)(nil),
			ptr("sub_2"), ptr(model.SubscriptionStatusActive), &endsAt, now, now)

	f.mock.ExpectQuery("WHERE subscription_status = 'active'").
		WithArgs("259200 seconds").
		WillReturnRows(rows)
	f.mock.ExpectQuery("FROM subscription_plans WHERE id").
		WithArgs(planID).
		WillReturnRows(planRows(2, "pro", 5, 50, nil))

	require.NoError(t, f.services.Reminder.SubscriptionExpiry(context.Background()))

	require.Len(t, f.queue.sent, 2)
	for _, msg := range f.queue.sent {
		assert.Equal(t, email.TemplateSubscriptionExpiring, msg.Template)
		assert.Equal(t, "pro", msg.Data["PlanName"])
	}
}

func TestReminderService_IncompleteProfilesOncePerUser(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectQuery("WHERE s.profile_completion").
		WithArgs(80).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "full_name", "seeker_id", "profile_completion"}).
			AddRow(int64(1), "ann@example.com", "Ann Lee", int64(10), 40).
			AddRow(int64(1), "ann@example.com", "Ann Lee", int64(11), 60).
			AddRow(int64(2), "bo@example.com", "Bo Chen", int64(12), 20))

	require.NoError(t, f.services.Reminder.IncompleteProfiles(context.Background()))

	require.Len(t, f.queue.sent, 2)
	assert.Equal(t, "ann@example.com", f.queue.sent[0].To)
	assert.Equal(t, "40", f.queue.sent[0].Data["Completion"])
	assert.Equal(t, "bo@example.com", f.queue.sent[1].To)
}

func TestReminderService_CloseExpiredJobs(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectExec("UPDATE job_position SET status = 'closed'").
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	require.NoError(t, f.services.Reminder.CloseExpiredJobs(context.Background()))
}

func TestReminderService_Register(t *testing.T) {
	f := newFixture(t)
	f.deps.Config.Reminders.Enabled = true
	f.deps.Config.Reminders.SubscriptionExpiry = "0 0 9 * * *"
	f.deps.Config.Reminders.CloseExpiredJobs = "0 */15 * * * *"
	services := service.New(f.deps)

	logger := zerolog.Nop()
	sched := cron.New(&logger, time.Minute)

	require.NoError(t, services.Reminder.Register(sched))
	assert.Equal(t, []string{service.TaskCloseExpiredJobs, service.TaskSubscriptionExpiry}, sched.Tasks())
}

func TestReminderService_RegisterDisabled(t *testing.T) {
	f := newFixture(t)
	f.deps.Config.Reminders.SubscriptionExpiry = "0 0 9 * * *"

	logger := zerolog.Nop()
	sched := cron.New(&logger, time.Minute)

	require.NoError(t, f.services.Reminder.Register(sched))
	assert.Empty(t, sched.Tasks())
}
