package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jobCols = []string{
	"id", "employer_id", "agency_id", "title", "description", "location", "employment_type",
	"salary_min", "salary_max", "skills", "status", "deadline", "created_at", "updated_at",
}

func TestJobRepository_Create(t *testing.T) {
	mock := newMock(t)
	now := time.Now()
	employerID := int64(9)

	mock.ExpectQuery("INSERT INTO job_position").
		WithArgs(&employerID, (*int64)(nil), "Backend Engineer", "Go and SQL", (*string)(nil),
			(*string)(nil), (*int64)(nil), (*int64)(nil), `["go"]`, model.JobStatusOpen, (*time.Time)(nil)).
		WillReturnRows(pgxmock.NewRows(jobCols).AddRow(
			int64(1), &employerID, (*int64)(nil), "Backend Engineer", "Go and SQL", (*string)(nil), (*string)(nil),
			(*int64)(nil), (*int64)(nil), json.RawMessage(`["go"]`), model.JobStatusOpen, (*time.Time)(nil), now, now,
		))

	job, err := repository.NewJobRepository(mock).Create(context.Background(), &model.JobPosition{
		EmployerID:  &employerID,
		Title:       "Backend Engineer",
		Description: "Go and SQL",
		Skills:      json.RawMessage(`["go"]`),
		Status:      model.JobStatusOpen,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), job.ID)
	assert.JSONEq(t, `["go"]`, string(job.Skills))
}

func TestJobRepository_List(t *testing.T) {
	mock := newMock(t)
	now := time.Now()
	employerID := int64(4)

	rows := pgxmock.NewRows(append(jobCols, "total")).AddRow(
		int64(3), &employerID, (*int64)(nil), "Designer", "Figma", (*string)(nil), (*string)(nil),
		(*int64)(nil), (*int64)(nil), json.RawMessage(`[]`), model.JobStatusOpen, (*time.Time)(nil), now, now, int64(1),
	)
	mock.ExpectQuery("FROM job_position WHERE status = \\$1 AND employer_id = \\$2 AND location ILIKE \\$3").
		WithArgs(model.JobStatusOpen, employerID, "%berlin%", model.DefaultLimit, 0).
		WillReturnRows(rows)

	jobs, total, err := repository.NewJobRepository(mock).List(context.Background(), &model.ListJobsRequest{
		Status:     model.JobStatusOpen,
		EmployerID: &employerID,
		Location:   "berlin",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Designer", jobs[0].Title)
}

func TestJobRepository_CountActiveByOwner(t *testing.T) {
	mock := newMock(t)
	agencyID := int64(2)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM job_position").
		WithArgs((*int64)(nil), &agencyID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repository.NewJobRepository(mock).CountActiveByOwner(context.Background(), nil, &agencyID)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestJobRepository_CloseExpired(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("UPDATE job_position SET status = 'closed'").
		WillReturnResult(pgxmock.NewResult("UPDATE", 4))

	closed, err := repository.NewJobRepository(mock).CloseExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), closed)
}

func TestJobRepository_Delete(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM job_position WHERE id = \\$1").
		WithArgs(int64(77)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repository.NewJobRepository(mock).Delete(context.Background(), 77))
}
