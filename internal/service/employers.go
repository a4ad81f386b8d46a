package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/deppfellow/recruitly/internal/lib/utils"
	"github.com/deppfellow/recruitly/internal/model"
)

type EmployerService struct {
	*Deps
}

func (s *EmployerService) Create(ctx context.Context, req *model.CreateEmployerRequest) (*model.Employer, error) {
	e := &model.Employer{
		UserID:      req.UserID,
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
		Website:     req.Website,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Description: req.Description,
	}
	e.ProfileCompletion = utils.CompletionPercentage(e.CompletionFields()...)

	created, err := s.Repos.Employer.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	return s.decorate(created), nil
}

func (s *EmployerService) GetByID(ctx context.Context, id int64) (*model.Employer, error) {
	e, err := s.Repos.Employer.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decorate(e), nil
}

func (s *EmployerService) Update(ctx context.Context, req *model.UpdateEmployerRequest) (*model.Employer, error) {
	e, err := s.Repos.Employer.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	assign(&e.CompanyName, req.CompanyName)
	assignPtr(&e.Industry, req.Industry)
	assignPtr(&e.CompanySize, req.CompanySize)
	assignPtr(&e.Website, req.Website)
	assignPtr(&e.Phone, req.Phone)
	assignPtr(&e.Address, req.Address)
	assignPtr(&e.City, req.City)
	assignPtr(&e.Country, req.Country)
	assignPtr(&e.Description, req.Description)

	return s.save(ctx, e)
}

func (s *EmployerService) UploadLogo(ctx context.Context, id int64, fh *multipart.FileHeader) (*model.Employer, error) {
	e, err := s.Repos.Employer.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key, err := s.storeUpload(ctx, fh, fmt.Sprintf("employers/%d", id), imageTypes)
	if err != nil {
		return nil, err
	}

	previous := e.LogoKey
	e.LogoKey = &key

	updated, err := s.save(ctx, e)
	if err != nil {
		s.removeFiles(ctx, key)
		return nil, err
	}

	if previous != nil {
		s.removeFiles(ctx, *previous)
	}
	return updated, nil
}

// Delete removes the employer and its stored logo.
func (s *EmployerService) Delete(ctx context.Context, id int64) error {
	logo, err := s.Repos.Employer.Delete(ctx, id)
	if err != nil {
		return err
	}
	if logo != nil {
		s.removeFiles(ctx, *logo)
	}
	return nil
}

func (s *EmployerService) List(ctx context.Context, req *model.ListEmployersRequest) (*model.PaginatedResponse[model.Employer], error) {
	employers, total, err := s.Repos.Employer.List(ctx, req)
	if err != nil {
		return nil, err
	}
	for i := range employers {
		s.decorate(&employers[i])
	}
	return model.NewPaginatedResponse(employers, req.PaginationQuery, total), nil
}

func (s *EmployerService) save(ctx context.Context, e *model.Employer) (*model.Employer, error) {
	e.ProfileCompletion = utils.CompletionPercentage(e.CompletionFields()...)

	updated, err := s.Repos.Employer.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	return s.decorate(updated), nil
}

func (s *EmployerService) decorate(e *model.Employer) *model.Employer {
	e.LogoURL = s.fileURL(e.LogoKey)
	return e
}
