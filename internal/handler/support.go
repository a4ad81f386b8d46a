package handler

import (
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/labstack/echo/v4"
)

type SupportHandler struct {
	Handler
	tickets *service.SupportService
}

func NewSupportHandler(s *server.Server, tickets *service.SupportService) *SupportHandler {
	return &SupportHandler{
		Handler: NewHandler(s),
		tickets: tickets,
	}
}

func (h *SupportHandler) Create(c echo.Context, req *model.CreateTicketRequest) (*model.SupportTicket, error) {
	return h.tickets.Create(c.Request().Context(), req)
}

func (h *SupportHandler) GetByID(c echo.Context, req *model.IDParam) (*model.SupportTicket, error) {
	return h.tickets.GetByID(c.Request().Context(), req.ID)
}

func (h *SupportHandler) Update(c echo.Context, req *model.UpdateTicketRequest) (*model.SupportTicket, error) {
	return h.tickets.Update(c.Request().Context(), req)
}

func (h *SupportHandler) Delete(c echo.Context, req *model.IDParam) error {
	return h.tickets.Delete(c.Request().Context(), req.ID)
}

func (h *SupportHandler) List(c echo.Context, req *model.ListTicketsRequest) (*model.PaginatedResponse[model.SupportTicket], error) {
	return h.tickets.List(c.Request().Context(), req)
}
