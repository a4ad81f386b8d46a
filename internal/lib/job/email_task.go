package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deppfellow/recruitly/internal/lib/email"
	"github.com/hibiken/asynq"
)

// TaskEmail is the single task type for outgoing email.
const TaskEmail = "email:send"

func NewEmailTask(msg email.Message, queue string) (*asynq.Task, error) {
	if queue == "" {
		queue = QueueDefault
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskEmail,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(queue),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueEmail queues msg for delivery by the worker.
func (j *JobService) EnqueueEmail(ctx context.Context, msg email.Message, queue string) error {
	task, err := NewEmailTask(msg, queue)
	if err != nil {
		return fmt.Errorf("failed to build email task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("template", string(msg.Template)).
		Msg("email task enqueued")
	return nil
}
