package cron

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_Add(t *testing.T) {
	logger := zerolog.Nop()
	s := New(&logger, time.Second)
	noop := func(context.Context) error { return nil }

	require.NoError(t, s.Add("close_expired_jobs", "0 */5 * * * *", noop))
	require.NoError(t, s.Add("subscription_expiry", "0 0 9 * * *", noop))
	require.NoError(t, s.Add("subscription_expiry", "0 0 10 * * *", noop))
	require.NoError(t, s.Add("incomplete_profile", "", noop))

	assert.Equal(t, []string{"close_expired_jobs", "subscription_expiry"}, s.Tasks())
	assert.Len(t, s.cron.Entries(), 2)

	err := s.Add("broken", "every now and then", noop)
	assert.ErrorContains(t, err, "invalid schedule")
}

func TestScheduler_Run(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	s := New(&logger, 50*time.Millisecond)

	var deadlineSet bool
	s.Run("ok", func(ctx context.Context) error {
		_, deadlineSet = ctx.Deadline()
		return nil
	})
	assert.True(t, deadlineSet)
	assert.Contains(t, buf.String(), "scheduled task completed")

	buf.Reset()
	s.Run("failing", func(context.Context) error { return errors.New("boom") })
	assert.Contains(t, buf.String(), "scheduled task failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestScheduler_StartStop(t *testing.T) {
	logger := zerolog.Nop()
	s := New(&logger, time.Second)

	fired := make(chan struct{}, 1)
	require.NoError(t, s.Add("tick", "* * * * * *", func(context.Context) error {
		select {
		case fired <- struct{}{}:
		default:
		}
		return nil
	}))

	s.Start()
	s.Start()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("task did not run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
	s.Stop(ctx)
}
