package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectPostLimit(m pgxmock.PgxPoolIface, employerID *int64, plan *pgxmock.Rows) {
	m.ExpectBegin()
	m.ExpectQuery("SELECT id FROM users .+ FOR UPDATE").
		WithArgs(employerID, (*int64)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	m.ExpectQuery("JOIN subscription_plans p").
		WithArgs(employerID, (*int64)(nil)).
		WillReturnRows(plan)
}

func expectActiveCount(m pgxmock.PgxPoolIface, employerID *int64, count int) {
	m.ExpectQuery(`SELECT COUNT\(\*\) FROM job_position`).
		WithArgs(employerID, (*int64)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(count))
}

func expectJobInsert(m pgxmock.PgxPoolIface, employerID *int64) {
	m.ExpectQuery("INSERT INTO job_position").
		WithArgs(employerID, (*int64)(nil), "Backend Engineer", "Go and SQL", (*string)(nil),
			(*string)(nil), (*int64)(nil), (*int64)(nil), "[]", model.JobStatusOpen, (*time.Time)(nil)).
		WillReturnRows(jobRows(1, model.JobStatusOpen))
}

func TestJobService_CreatePostLimit(t *testing.T) {
	employerID := int64(9)

	tests := []struct {
		name    string
		setup   func(m pgxmock.PgxPoolIface)
		wantErr bool
	}{
		{
			name: "below limit",
			setup: func(m pgxmock.PgxPoolIface) {
				expectPostLimit(m, &employerID, planRows(2, "pro", 5, 50, nil))
				expectActiveCount(m, &employerID, 4)
				expectJobInsert(m, &employerID)
				m.ExpectCommit()
			},
		},
		{
			name: "limit reached",
			setup: func(m pgxmock.PgxPoolIface) {
				expectPostLimit(m, &employerID, planRows(2, "pro", 5, 50, nil))
				expectActiveCount(m, &employerID, 5)
				m.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "unlimited plan",
			setup: func(m pgxmock.PgxPoolIface) {
				expectPostLimit(m, &employerID, planRows(2, "enterprise", 0, 0, nil))
				expectJobInsert(m, &employerID)
				m.ExpectCommit()
			},
		},
		{
			name: "no plan",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectBegin()
				m.ExpectQuery("SELECT id FROM users .+ FOR UPDATE").
					WithArgs(&employerID, (*int64)(nil)).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
				m.ExpectQuery("JOIN subscription_plans p").
					WithArgs(&employerID, (*int64)(nil)).
					WillReturnError(pgx.ErrNoRows)
				expectJobInsert(m, &employerID)
				m.ExpectCommit()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f.mock)

			job, err := f.services.Job.Create(context.Background(), &model.CreateJobRequest{
				EmployerID:  &employerID,
				Title:       "Backend Engineer",
				Description: "Go and SQL",
			})

			if tt.wantErr {
				httpErr := requireStatus(t, err, http.StatusForbidden)
				assert.Equal(t, "PLAN_LIMIT_REACHED", httpErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), job.ID)
		})
	}
}

func TestJobService_CreateClosedSkipsLimit(t *testing.T) {
	f := newFixture(t)
	employerID := int64(9)

	f.mock.ExpectQuery("INSERT INTO job_position").
		WithArgs(&employerID, (*int64)(nil), "Backend Engineer", "Go and SQL", (*string)(nil),
			(*string)(nil), (*int64)(nil), (*int64)(nil), "[]", model.JobStatusClosed, (*time.Time)(nil)).
		WillReturnRows(jobRows(1, model.JobStatusClosed))

	job, err := f.services.Job.Create(context.Background(), &model.CreateJobRequest{
		EmployerID:  &employerID,
		Title:       "Backend Engineer",
		Description: "Go and SQL",
		Status:      ptr(model.JobStatusClosed),
	})

	require.NoError(t, err)
	assert.Equal(t, model.JobStatusClosed, job.Status)
}

func TestJobService_UpdateReopenPostLimit(t *testing.T) {
	employerID := int64(9)

	expectReopenUpdate := func(m pgxmock.PgxPoolIface) {
		m.ExpectQuery("UPDATE job_position SET").
			WithArgs(int64(1), "Backend Engineer", "Go and SQL", (*string)(nil), (*string)(nil),
				(*int64)(nil), (*int64)(nil), `["go"]`, model.JobStatusOpen, (*time.Time)(nil)).
			WillReturnRows(jobRows(1, model.JobStatusOpen))
	}

	t.Run("limit reached", func(t *testing.T) {
		f := newFixture(t)
		f.mock.ExpectQuery("FROM job_position WHERE id").
			WithArgs(int64(1)).
			WillReturnRows(jobRows(1, model.JobStatusClosed))
		expectPostLimit(f.mock, &employerID, planRows(2, "pro", 5, 50, nil))
		expectActiveCount(f.mock, &employerID, 5)
		f.mock.ExpectRollback()

		_, err := f.services.Job.Update(context.Background(), &model.UpdateJobRequest{
			ID:     1,
			Status: ptr(model.JobStatusOpen),
		})

		httpErr := requireStatus(t, err, http.StatusForbidden)
		assert.Equal(t, "PLAN_LIMIT_REACHED", httpErr.Code)
	})

	t.Run("below limit", func(t *testing.T) {
		f := newFixture(t)
		f.mock.ExpectQuery("FROM job_position WHERE id").
			WithArgs(int64(1)).
			WillReturnRows(jobRows(1, model.JobStatusClosed))
		expectPostLimit(f.mock, &employerID, planRows(2, "pro", 5, 50, nil))
		expectActiveCount(f.mock, &employerID, 2)
		expectReopenUpdate(f.mock)
		f.mock.ExpectCommit()

		job, err := f.services.Job.Update(context.Background(), &model.UpdateJobRequest{
			ID:     1,
			Status: ptr(model.JobStatusOpen),
		})

		require.NoError(t, err)
		assert.Equal(t, model.JobStatusOpen, job.Status)
	})

	t.Run("open job edits skip the limit", func(t *testing.T) {
		f := newFixture(t)
		f.mock.ExpectQuery("FROM job_position WHERE id").
			WithArgs(int64(1)).
			WillReturnRows(jobRows(1, model.JobStatusOpen))
		expectReopenUpdate(f.mock)

		_, err := f.services.Job.Update(context.Background(), &model.UpdateJobRequest{
			ID:     1,
			Status: ptr(model.JobStatusOpen),
		})

		require.NoError(t, err)
	})
}

func TestJobService_CreateRejectsSalaryRange(t *testing.T) {
	f := newFixture(t)
	employerID := int64(9)

	_, err := f.services.Job.Create(context.Background(), &model.CreateJobRequest{
		EmployerID:  &employerID,
		Title:       "Backend Engineer",
		Description: "Go and SQL",
		SalaryMin:   ptr(int64(100)),
		SalaryMax:   ptr(int64(50)),
	})

	httpErr := requireStatus(t, err, http.StatusBadRequest)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "salary_max", httpErr.Errors[0].Field)
}

var viewCols = []string{"id", "employer_id", "job_seeker_id", "viewed_at", "created_at", "updated_at"}

func viewRows() *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(viewCols).AddRow(int64(1), int64(9), int64(4), now, now, now)
}

func TestViewedProfileService_Record(t *testing.T) {
	employerID := int64(9)

	expectLock := func(m pgxmock.PgxPoolIface, seen bool) {
		m.ExpectBegin()
		m.ExpectQuery("SELECT id FROM users .+ FOR UPDATE").
			WithArgs(&employerID, (*int64)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		m.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(9), int64(4)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(seen))
	}

	t.Run("repeat view skips the limit", func(t *testing.T) {
		f := newFixture(t)
		expectLock(f.mock, true)
		f.mock.ExpectQuery("INSERT INTO viewed_profiles").
			WithArgs(int64(9), int64(4)).
			WillReturnRows(viewRows())
		f.mock.ExpectCommit()

		view, err := f.services.ViewedProfile.Record(context.Background(), &model.RecordViewRequest{EmployerID: 9, JobSeekerID: 4})
		require.NoError(t, err)
		assert.Equal(t, int64(4), view.JobSeekerID)
	})

	t.Run("new view over the limit", func(t *testing.T) {
		f := newFixture(t)
		expectLock(f.mock, false)
		f.mock.ExpectQuery("JOIN subscription_plans p").
			WithArgs(&employerID, (*int64)(nil)).
			WillReturnRows(planRows(2, "basic", 1, 10, nil))
		f.mock.ExpectQuery("FROM viewed_profiles WHERE employer_id").
			WithArgs(int64(9)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(10))
		f.mock.ExpectRollback()

		_, err := f.services.ViewedProfile.Record(context.Background(), &model.RecordViewRequest{EmployerID: 9, JobSeekerID: 4})

		httpErr := requireStatus(t, err, http.StatusForbidden)
		assert.Equal(t, "PLAN_LIMIT_REACHED", httpErr.Code)
		require.NotNil(t, httpErr.Action)
	})

	t.Run("new view below the limit", func(t *testing.T) {
		f := newFixture(t)
		expectLock(f.mock, false)
		f.mock.ExpectQuery("JOIN subscription_plans p").
			WithArgs(&employerID, (*int64)(nil)).
			WillReturnRows(planRows(2, "basic", 1, 10, nil))
		f.mock.ExpectQuery("FROM viewed_profiles WHERE employer_id").
			WithArgs(int64(9)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
		f.mock.ExpectQuery("INSERT INTO viewed_profiles").
			WithArgs(int64(9), int64(4)).
			WillReturnRows(viewRows())
		f.mock.ExpectCommit()

		_, err := f.services.ViewedProfile.Record(context.Background(), &model.RecordViewRequest{EmployerID: 9, JobSeekerID: 4})
		require.NoError(t, err)
	})
}
