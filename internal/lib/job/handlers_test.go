package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/recruitly/internal/lib/email"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []email.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg email.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return "msg_1", nil
}

type fakeMailLog struct {
	mails []model.Mail
	err   error
}

func (f *fakeMailLog) Create(_ context.Context, m *model.Mail) (*model.Mail, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mails = append(f.mails, *m)
	return m, nil
}

func newTestService(mailer Mailer, mails MailLog) *JobService {
	logger := zerolog.Nop()
	return &JobService{logger: &logger, mailer: mailer, mails: mails}
}

func TestNewEmailTask(t *testing.T) {
	msg := email.Welcome("jane@example.com", "Jane")

	task, err := NewEmailTask(msg, "")
	require.NoError(t, err)
	assert.Equal(t, TaskEmail, task.Type())

	var decoded email.Message
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, msg, decoded)
}

func TestHandleEmailTask_Sent(t *testing.T) {
	mailer := &fakeMailer{}
	mails := &fakeMailLog{}
	j := newTestService(mailer, mails)

	task, err := NewEmailTask(email.Welcome("jane@example.com", "Jane"), QueueDefault)
	require.NoError(t, err)

	require.NoError(t, j.handleEmailTask(context.Background(), task))

	require.Len(t, mailer.sent, 1)
	require.Len(t, mails.mails, 1)
	assert.Equal(t, model.MailStatusSent, mails.mails[0].Status)
	assert.Equal(t, "jane@example.com", mails.mails[0].Recipient)
	assert.Equal(t, "welcome", mails.mails[0].Template)
	require.NotNil(t, mails.mails[0].ProviderMessageID)
	assert.Equal(t, "msg_1", *mails.mails[0].ProviderMessageID)
}

func TestHandleEmailTask_Failed(t *testing.T) {
	mails := &fakeMailLog{}
	j := newTestService(&fakeMailer{err: errors.New("provider down")}, mails)

	task, err := NewEmailTask(email.PaymentFailed("jane@example.com", "Jane", "declined"), QueueCritical)
	require.NoError(t, err)

	err = j.handleEmailTask(context.Background(), task)
	assert.EqualError(t, err, "provider down")

	require.Len(t, mails.mails, 1)
	assert.Equal(t, model.MailStatusFailed, mails.mails[0].Status)
	require.NotNil(t, mails.mails[0].Error)
	assert.Equal(t, "provider down", *mails.mails[0].Error)
}

func TestHandleEmailTask_LogFailureDoesNotRetry(t *testing.T) {
	j := newTestService(&fakeMailer{}, &fakeMailLog{err: errors.New("db down")})

	task, err := NewEmailTask(email.Welcome("jane@example.com", "Jane"), QueueDefault)
	require.NoError(t, err)

	assert.NoError(t, j.handleEmailTask(context.Background(), task))
}

func TestHandleEmailTask_BadPayload(t *testing.T) {
	j := newTestService(&fakeMailer{}, &fakeMailLog{})

	err := j.handleEmailTask(context.Background(), asynq.NewTask(TaskEmail, []byte("{")))
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
