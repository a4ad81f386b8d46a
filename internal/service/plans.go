package service

import (
	"context"
	"time"

	"github.com/deppfellow/recruitly/internal/model"
)

const activePlansCacheKey = "plans:active"

type PlanService struct {
	*Deps
}

// List serves active plans from the cache. Inactive plans are read from
// the database every time.
func (s *PlanService) List(ctx context.Context, includeInactive bool) ([]model.SubscriptionPlan, error) {
	if includeInactive {
		return s.Repos.Plan.List(ctx, true)
	}

	var plans []model.SubscriptionPlan
	if s.Cache != nil {
		hit, err := s.Cache.GetJSON(ctx, activePlansCacheKey, &plans)
		if err != nil {
			s.log(ctx).Warn().Err(err).Msg("plan cache read failed")
		}
		if hit {
			return plans, nil
		}
	}

	plans, err := s.Repos.Plan.List(ctx, false)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []model.SubscriptionPlan{}
	}

	if s.Cache != nil {
		if err := s.Cache.SetJSON(ctx, activePlansCacheKey, plans, s.cacheTTL()); err != nil {
			s.log(ctx).Warn().Err(err).Msg("plan cache write failed")
		}
	}
	return plans, nil
}

func (s *PlanService) GetByID(ctx context.Context, id int64) (*model.SubscriptionPlan, error) {
	return s.Repos.Plan.GetByID(ctx, id)
}

func (s *PlanService) Create(ctx context.Context, req *model.CreatePlanRequest) (*model.SubscriptionPlan, error) {
	plan, err := s.Repos.Plan.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return plan, nil
}

func (s *PlanService) Update(ctx context.Context, req *model.UpdatePlanRequest) (*model.SubscriptionPlan, error) {
	plan, err := s.Repos.Plan.Update(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return plan, nil
}

func (s *PlanService) Delete(ctx context.Context, id int64) error {
	if err := s.Repos.Plan.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *PlanService) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, activePlansCacheKey); err != nil {
		s.log(ctx).Error().Err(err).Msg("plan cache invalidation failed")
	}
}

func (s *PlanService) cacheTTL() time.Duration {
	if s.Config != nil && s.Config.Redis.PlanCacheTTL > 0 {
		return s.Config.Redis.PlanCacheTTL
	}
	return 10 * time.Minute
}
