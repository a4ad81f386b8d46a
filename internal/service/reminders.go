package service

import (
	"context"

	"github.com/deppfellow/recruitly/internal/lib/cron"
	"github.com/deppfellow/recruitly/internal/lib/email"
	"github.com/deppfellow/recruitly/internal/lib/job"
)

const (
	TaskSubscriptionExpiry = "subscription_expiry"
	TaskIncompleteProfile  = "incomplete_profile"
	TaskCloseExpiredJobs   = "close_expired_jobs"
)

type ReminderService struct {
	*Deps
}

// Register schedules the reminder tasks whose schedule is configured.
func (s *ReminderService) Register(sched *cron.Scheduler) error {
	if !s.Config.Reminders.Enabled {
		return nil
	}

	cfg := s.Config.Reminders
	tasks := []struct {
		name     string
		schedule string
		fn       cron.TaskFunc
	}{
		{TaskSubscriptionExpiry, cfg.SubscriptionExpiry, s.SubscriptionExpiry},
		{TaskIncompleteProfile, cfg.IncompleteProfile, s.IncompleteProfiles},
		{TaskCloseExpiredJobs, cfg.CloseExpiredJobs, s.CloseExpiredJobs},
	}
	for _, t := range tasks {
		if err := sched.Add(t.name, t.schedule, t.fn); err != nil {
			return err
		}
	}
	return nil
}

// SubscriptionExpiry emails every user whose active subscription ends
// within the configured window.
func (s *ReminderService) SubscriptionExpiry(ctx context.Context) error {
	users, err := s.Repos.User.ListExpiringSubscriptions(ctx, s.Config.Reminders.ExpiryWindow)
	if err != nil {
		return err
	}

	names := map[int64]string{}
	for _, u := range users {
		if u.SubscriptionEndsAt == nil {
			continue
		}

		planName := ""
		if u.PlanID != nil {
			name, ok := names[*u.PlanID]
			if !ok {
				if plan, err := s.Repos.Plan.GetByID(ctx, *u.PlanID); err == nil {
					name = plan.Name
				}
				names[*u.PlanID] = name
			}
			planName = name
		}

		s.notify(ctx, email.SubscriptionExpiring(u.Email, u.FullName, planName, *u.SubscriptionEndsAt), job.QueueLow)
	}

	s.log(ctx).Info().Int("count", len(users)).Msg("subscription expiry reminders queued")
	return nil
}

// IncompleteProfiles emails job seekers whose profile completion is below
// the configured cutoff. A user with several profiles gets one email.
func (s *ReminderService) IncompleteProfiles(ctx context.Context) error {
	profiles, err := s.Repos.JobSeeker.ListIncompleteProfiles(ctx, s.Config.Reminders.IncompleteProfileCutoff)
	if err != nil {
		return err
	}

	sent := map[int64]bool{}
	for _, p := range profiles {
		if sent[p.UserID] {
			continue
		}
		sent[p.UserID] = true
		s.notify(ctx, email.ProfileIncomplete(p.Email, p.FullName, p.Completion), job.QueueLow)
	}

	s.log(ctx).Info().Int("count", len(sent)).Msg("incomplete profile reminders queued")
	return nil
}

func (s *ReminderService) CloseExpiredJobs(ctx context.Context) error {
	closed, err := s.Repos.Job.CloseExpired(ctx)
	if err != nil {
		return err
	}
	s.log(ctx).Info().Int64("count", closed).Msg("expired job positions closed")
	return nil
}
