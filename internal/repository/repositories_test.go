package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/recruitly/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositories_InTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM users WHERE id = \\$1").
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		err := repository.New(mock).InTx(context.Background(), func(tx *repository.Repositories) error {
			return tx.User.Delete(context.Background(), 3)
		})

		require.NoError(t, err)
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := repository.New(mock).InTx(context.Background(), func(*repository.Repositories) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
	})

	t.Run("begin failure", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin().WillReturnError(errors.New("pool closed"))

		called := false
		err := repository.New(mock).InTx(context.Background(), func(*repository.Repositories) error {
			called = true
			return nil
		})

		assert.ErrorContains(t, err, "failed to begin transaction")
		assert.False(t, called)
	})
}
