package service

import (
	"context"

	"github.com/deppfellow/recruitly/internal/lib/email"
	"github.com/deppfellow/recruitly/internal/lib/job"
	"github.com/deppfellow/recruitly/internal/model"
)

type UserService struct {
	*Deps
}

// Create stores the user and queues the welcome email.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	user, err := s.Repos.User.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, email.Welcome(user.Email, user.FullName), job.QueueDefault)
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.Repos.User.GetByID(ctx, id)
}

// GetByAuthID resolves an identity-provider subject to its user row.
func (s *UserService) GetByAuthID(ctx context.Context, authID string) (*model.User, error) {
	return s.Repos.User.GetByAuthID(ctx, authID)
}

// Register creates the account of an authenticated identity that has none
// yet. Self-registration cannot create admins.
func (s *UserService) Register(ctx context.Context, authID string, req *model.RegisterRequest) (*model.User, error) {
	return s.Create(ctx, &model.CreateUserRequest{
		Email:    req.Email,
		AuthID:   &authID,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     req.Role,
	})
}

func (s *UserService) Update(ctx context.Context, req *model.UpdateUserRequest) (*model.User, error) {
	return s.Repos.User.Update(ctx, req)
}

func (s *UserService) List(ctx context.Context, req *model.ListUsersRequest) (*model.PaginatedResponse[model.User], error) {
	users, total, err := s.Repos.User.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return model.NewPaginatedResponse(users, req.PaginationQuery, total), nil
}

// Delete removes the user, its profiles and their stored files.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	keys, err := s.Repos.User.FileKeys(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Repos.User.Delete(ctx, id); err != nil {
		return err
	}

	s.removeFiles(ctx, keys...)
	return nil
}
