package handler

import (
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/labstack/echo/v4"
)

// ContentHandler serves one editorial kind (news, tips or trainings).
// Unpublished entries are visible to admins only.
type ContentHandler struct {
	Handler
	content *service.ContentService
}

func NewContentHandler(s *server.Server, content *service.ContentService) *ContentHandler {
	return &ContentHandler{
		Handler: NewHandler(s),
		content: content,
	}
}

func (h *ContentHandler) Kind() model.ContentKind {
	return h.content.Kind()
}

func (h *ContentHandler) Create(c echo.Context, req *model.CreateContentRequest) (*model.Content, error) {
	return h.content.Create(c.Request().Context(), req)
}

func (h *ContentHandler) GetByID(c echo.Context, req *model.IDParam) (*model.Content, error) {
	return h.content.GetByID(c.Request().Context(), req.ID, isAdmin(c))
}

func (h *ContentHandler) Update(c echo.Context, req *model.UpdateContentRequest) (*model.Content, error) {
	return h.content.Update(c.Request().Context(), req)
}

func (h *ContentHandler) UploadImage(c echo.Context, req *model.IDParam) (*model.Content, error) {
	fh, err := formFile(c)
	if err != nil {
		return nil, err
	}
	return h.content.UploadImage(c.Request().Context(), req.ID, fh)
}

func (h *ContentHandler) Delete(c echo.Context, req *model.IDParam) error {
	return h.content.Delete(c.Request().Context(), req.ID)
}

func (h *ContentHandler) List(c echo.Context, req *model.ListContentRequest) (*model.PaginatedResponse[model.Content], error) {
	return h.content.List(c.Request().Context(), req, isAdmin(c))
}
