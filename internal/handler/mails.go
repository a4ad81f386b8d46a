package handler

import (
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/labstack/echo/v4"
)

type MailHandler struct {
	Handler
	mails *service.MailService
}

func NewMailHandler(s *server.Server, mails *service.MailService) *MailHandler {
	return &MailHandler{
		Handler: NewHandler(s),
		mails:   mails,
	}
}

func (h *MailHandler) GetByID(c echo.Context, req *model.IDParam) (*model.Mail, error) {
	return h.mails.GetByID(c.Request().Context(), req.ID)
}

func (h *MailHandler) List(c echo.Context, req *model.ListMailsRequest) (*model.PaginatedResponse[model.Mail], error) {
	return h.mails.List(c.Request().Context(), req)
}

// Preview renders an email template with sample data.
func (h *MailHandler) Preview(c echo.Context, req *model.PreviewMailRequest) (string, error) {
	return h.mails.Preview(req.Template)
}
