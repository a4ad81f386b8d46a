package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/repository"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contentCols = []string{"id", "title", "body", "image_key", "published", "created_at", "updated_at"}

func TestContentRepository_UsesKindTable(t *testing.T) {
	for _, kind := range []model.ContentKind{model.ContentNews, model.ContentTips, model.ContentTrainings} {
		t.Run(string(kind), func(t *testing.T) {
			mock := newMock(t)
			now := time.Now()

			mock.ExpectQuery("INSERT INTO "+string(kind)+" \\(title, body, published\\)").
				WithArgs("Title", "Body", true).
				WillReturnRows(pgxmock.NewRows(contentCols).AddRow(int64(1), "Title", "Body", (*string)(nil), true, now, now))

			item, err := repository.NewContentRepository(mock, kind).Create(context.Background(), &model.CreateContentRequest{
				Title:     "Title",
				Body:      "Body",
				Published: true,
			})

			require.NoError(t, err)
			assert.True(t, item.Published)
		})
	}
}

func TestContentRepository_ListPublishedOnly(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("FROM news WHERE published = \\$1 ORDER BY").
		WithArgs(true, model.DefaultLimit, 0).
		WillReturnRows(pgxmock.NewRows(append(contentCols, "total")).
			AddRow(int64(1), "Hiring trends", "...", (*string)(nil), true, now, now, int64(1)))

	items, total, err := repository.NewContentRepository(mock, model.ContentNews).
		List(context.Background(), &model.ListContentRequest{}, false)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)
}

func TestContentRepository_GetUnpublishedHidden(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("FROM tips WHERE id = \\$1 AND \\(published OR \\$2\\)").
		WithArgs(int64(3), false).
		WillReturnError(pgx.ErrNoRows)

	_, err := repository.NewContentRepository(mock, model.ContentTips).GetByID(context.Background(), 3, false)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, sqlerr.HandleError(err), &httpErr)
	assert.Equal(t, "Tip not found", httpErr.Message)
}

func TestContentRepository_UnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		repository.NewContentRepository(nil, model.ContentKind("users; DROP TABLE users"))
	})
}

func TestReportRepository_TargetColumn(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO job_reports \\(reporter_user_id, job_position_id, reason, details, status\\)").
		WithArgs(int64(1), int64(9), "spam", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "reporter_user_id", "job_position_id", "reason", "details", "status", "created_at", "updated_at",
		}).AddRow(int64(4), int64(1), int64(9), "spam", (*string)(nil), model.ReportStatusOpen, now, now))

	rep, err := repository.NewReportRepository(mock, model.ReportJob).Create(context.Background(), 1, 9, "spam", nil)

	require.NoError(t, err)
	require.NotNil(t, rep.JobPositionID)
	assert.Equal(t, int64(9), *rep.JobPositionID)
	assert.Nil(t, rep.JobSeekerID)
}
