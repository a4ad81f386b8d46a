package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/recruitly/internal/config"
	"github.com/deppfellow/recruitly/internal/lib/email"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type Mailer interface {
	Send(ctx context.Context, msg email.Message) (string, error)
}

// MailLog records delivery outcomes in mails_table.
type MailLog interface {
	Create(ctx context.Context, m *model.Mail) (*model.Mail, error)
}

// InitHandlers builds the email client used by the worker.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger, mails MailLog) error {
	client, err := email.NewClient(cfg, logger)
	if err != nil {
		return err
	}

	j.mailer = client
	j.mails = mails
	return nil
}

func (j *JobService) handleEmailTask(ctx context.Context, t *asynq.Task) error {
	var msg email.Message
	if err := json.Unmarshal(t.Payload(), &msg); err != nil {
		return fmt.Errorf("failed to unmarshal email payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("template", string(msg.Template)).
		Str("to", msg.To).
		Logger()

	log.Info().Msg("Processing email task")

	messageID, err := j.mailer.Send(ctx, msg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to send email")
		if finalAttempt(ctx) {
			errMsg := err.Error()
			j.record(ctx, &log, &model.Mail{
				Recipient: msg.To,
				Subject:   msg.Subject,
				Template:  string(msg.Template),
				Status:    model.MailStatusFailed,
				Error:     &errMsg,
			})
		}
		return err
	}

	j.record(ctx, &log, &model.Mail{
		Recipient:         msg.To,
		Subject:           msg.Subject,
		Template:          string(msg.Template),
		Status:            model.MailStatusSent,
		ProviderMessageID: &messageID,
	})

	log.Info().Str("message_id", messageID).Msg("Successfully sent email")
	return nil
}

// record never fails the task; a sent email must not be retried because the
// log insert failed.
func (j *JobService) record(ctx context.Context, log *zerolog.Logger, m *model.Mail) {
	if j.mails == nil {
		return
	}
	if _, err := j.mails.Create(ctx, m); err != nil {
		log.Error().Err(err).Str("status", m.Status).Msg("Failed to record email")
	}
}

func finalAttempt(ctx context.Context) bool {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return true
	}
	maxRetry, ok := asynq.GetMaxRetry(ctx)
	if !ok {
		return true
	}
	return retried >= maxRetry
}
