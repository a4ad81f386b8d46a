// Package cron runs the scheduled maintenance jobs on robfig/cron.
package cron

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type TaskFunc func(ctx context.Context) error

type Scheduler struct {
	cron    *cron.Cron
	logger  zerolog.Logger
	timeout time.Duration

	mu      sync.Mutex
	tasks   map[string]cron.EntryID
	running bool
}

// New creates a scheduler parsing expressions with a leading seconds
// field. Each run gets a context bounded by taskTimeout.
func New(logger *zerolog.Logger, taskTimeout time.Duration) *Scheduler {
	if taskTimeout <= 0 {
		taskTimeout = 10 * time.Minute
	}

	return &Scheduler{
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With().Str("component", "scheduler").Logger(),
		timeout: taskTimeout,
		tasks:   make(map[string]cron.EntryID),
	}
}

// Add registers task under name, replacing any task with the same name.
// An empty schedule leaves the task unregistered.
func (s *Scheduler) Add(name, schedule string, task TaskFunc) error {
	if schedule == "" {
		s.logger.Info().Str("task", name).Msg("task disabled, no schedule configured")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.tasks[name]; ok {
		s.cron.Remove(id)
		delete(s.tasks, name)
	}

	id, err := s.cron.AddFunc(schedule, func() { s.Run(name, task) })
	if err != nil {
		return fmt.Errorf("invalid schedule %q for task %s: %w", schedule, name, err)
	}

	s.tasks[name] = id
	s.logger.Info().Str("task", name).Str("schedule", schedule).Msg("scheduled task registered")
	return nil
}

// Run executes task once, logging its outcome.
func (s *Scheduler) Run(name string, task TaskFunc) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := task(ctx); err != nil {
		s.logger.Error().Err(err).
			Str("task", name).
			Dur("duration", time.Since(start)).
			Msg("scheduled task failed")
		return
	}

	s.logger.Info().
		Str("task", name).
		Dur("duration", time.Since(start)).
		Msg("scheduled task completed")
}

func (s *Scheduler) Tasks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.tasks))
	for name := range s.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.cron.Start()
	s.running = true
	s.logger.Info().Int("tasks", len(s.tasks)).Msg("scheduler started")
}

// Stop waits for running tasks to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	select {
	case <-s.cron.Stop().Done():
		s.logger.Info().Msg("scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn().Msg("scheduler stop timed out")
	}
	s.running = false
}
