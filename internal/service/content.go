package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/deppfellow/recruitly/internal/model"
)

// ContentService manages one kind of editorial content: news, tips or
// trainings. Unpublished items are only visible to admins.
type ContentService struct {
	*Deps
	kind model.ContentKind
}

func (s *ContentService) Kind() model.ContentKind {
	return s.kind
}

func (s *ContentService) Create(ctx context.Context, req *model.CreateContentRequest) (*model.Content, error) {
	c, err := s.Repos.Content[s.kind].Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.decorate(c), nil
}

func (s *ContentService) GetByID(ctx context.Context, id int64, includeUnpublished bool) (*model.Content, error) {
	c, err := s.Repos.Content[s.kind].GetByID(ctx, id, includeUnpublished)
	if err != nil {
		return nil, err
	}
	return s.decorate(c), nil
}

func (s *ContentService) Update(ctx context.Context, req *model.UpdateContentRequest) (*model.Content, error) {
	c, err := s.Repos.Content[s.kind].Update(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.decorate(c), nil
}

func (s *ContentService) UploadImage(ctx context.Context, id int64, fh *multipart.FileHeader) (*model.Content, error) {
	repo := s.Repos.Content[s.kind]

	c, err := repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}

	key, err := s.storeUpload(ctx, fh, fmt.Sprintf("%s/%d", s.kind, id), imageTypes)
	if err != nil {
		return nil, err
	}

	updated, err := repo.SetImage(ctx, id, key)
	if err != nil {
		s.removeFiles(ctx, key)
		return nil, err
	}

	if c.ImageKey != nil {
		s.removeFiles(ctx, *c.ImageKey)
	}
	return s.decorate(updated), nil
}

func (s *ContentService) Delete(ctx context.Context, id int64) error {
	image, err := s.Repos.Content[s.kind].Delete(ctx, id)
	if err != nil {
		return err
	}
	if image != nil {
		s.removeFiles(ctx, *image)
	}
	return nil
}

func (s *ContentService) List(ctx context.Context, req *model.ListContentRequest, includeUnpublished bool) (*model.PaginatedResponse[model.Content], error) {
	items, total, err := s.Repos.Content[s.kind].List(ctx, req, includeUnpublished)
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.decorate(&items[i])
	}
	return model.NewPaginatedResponse(items, req.PaginationQuery, total), nil
}

func (s *ContentService) decorate(c *model.Content) *model.Content {
	c.ImageURL = s.fileURL(c.ImageKey)
	return c
}
