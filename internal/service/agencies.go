package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/deppfellow/recruitly/internal/lib/utils"
	"github.com/deppfellow/recruitly/internal/model"
)

type AgencyService struct {
	*Deps
}

func (s *AgencyService) Create(ctx context.Context, req *model.CreateAgencyRequest) (*model.Agency, error) {
	a := &model.Agency{
		UserID:      req.UserID,
		AgencyName:  req.AgencyName,
		Website:     req.Website,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Description: req.Description,
	}
	a.ProfileCompletion = utils.CompletionPercentage(a.CompletionFields()...)

	created, err := s.Repos.Agency.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	return s.decorate(created), nil
}

func (s *AgencyService) GetByID(ctx context.Context, id int64) (*model.Agency, error) {
	a, err := s.Repos.Agency.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decorate(a), nil
}

func (s *AgencyService) Update(ctx context.Context, req *model.UpdateAgencyRequest) (*model.Agency, error) {
	a, err := s.Repos.Agency.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	assign(&a.AgencyName, req.AgencyName)
	assignPtr(&a.Website, req.Website)
	assignPtr(&a.Phone, req.Phone)
	assignPtr(&a.Address, req.Address)
	assignPtr(&a.City, req.City)
	assignPtr(&a.Country, req.Country)
	assignPtr(&a.Description, req.Description)

	return s.save(ctx, a)
}

// UploadLogo stores a new logo and deletes the one it replaces.
func (s *AgencyService) UploadLogo(ctx context.Context, id int64, fh *multipart.FileHeader) (*model.Agency, error) {
	a, err := s.Repos.Agency.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key, err := s.storeUpload(ctx, fh, fmt.Sprintf("agencies/%d", id), imageTypes)
	if err != nil {
		return nil, err
	}

	previous := a.LogoKey
	a.LogoKey = &key

	updated, err := s.save(ctx, a)
	if err != nil {
		s.removeFiles(ctx, key)
		return nil, err
	}

	if previous != nil {
		s.removeFiles(ctx, *previous)
	}
	return updated, nil
}

func (s *AgencyService) Delete(ctx context.Context, id int64) error {
	logo, err := s.Repos.Agency.Delete(ctx, id)
	if err != nil {
		return err
	}
	if logo != nil {
		s.removeFiles(ctx, *logo)
	}
	return nil
}

func (s *AgencyService) List(ctx context.Context, req *model.ListAgenciesRequest) (*model.PaginatedResponse[model.Agency], error) {
	agencies, total, err := s.Repos.Agency.List(ctx, req)
	if err != nil {
		return nil, err
	}
	for i := range agencies {
		s.decorate(&agencies[i])
	}
	return model.NewPaginatedResponse(agencies, req.PaginationQuery, total), nil
}

// ListJobSeekers lists the job seekers managed by the agency.
func (s *AgencyService) ListJobSeekers(ctx context.Context, req *model.ListAgencyJobSeekersRequest) (*model.PaginatedResponse[model.JobSeeker], error) {
	if _, err := s.Repos.Agency.GetByID(ctx, req.ID); err != nil {
		return nil, err
	}

	agencyID := req.ID
	seekers, total, err := s.Repos.JobSeeker.List(ctx, &model.ListJobSeekersRequest{
		PaginationQuery: req.PaginationQuery,
		AgencyID:        &agencyID,
	})
	if err != nil {
		return nil, err
	}
	for i := range seekers {
		decorateJobSeeker(s.Deps, &seekers[i])
	}
	return model.NewPaginatedResponse(seekers, req.PaginationQuery, total), nil
}

func (s *AgencyService) save(ctx context.Context, a *model.Agency) (*model.Agency, error) {
	a.ProfileCompletion = utils.CompletionPercentage(a.CompletionFields()...)

	updated, err := s.Repos.Agency.Update(ctx, a)
	if err != nil {
		return nil, err
	}
	return s.decorate(updated), nil
}

func (s *AgencyService) decorate(a *model.Agency) *model.Agency {
	a.LogoURL = s.fileURL(a.LogoKey)
	return a
}
