package service

import (
	"context"

	"github.com/deppfellow/recruitly/internal/model"
)

type ShortlistService struct {
	*Deps
}

func (s *ShortlistService) Create(ctx context.Context, req *model.CreateShortlistRequest) (*model.ShortlistEntry, error) {
	return s.Repos.Shortlist.Create(ctx, req)
}

func (s *ShortlistService) Delete(ctx context.Context, id int64) error {
	return s.Repos.Shortlist.Delete(ctx, id)
}

func (s *ShortlistService) List(ctx context.Context, req *model.ListShortlistRequest) (*model.PaginatedResponse[model.ShortlistEntry], error) {
	entries, total, err := s.Repos.Shortlist.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return model.NewPaginatedResponse(entries, req.PaginationQuery, total), nil
}
