package handler

import (
	"io"
	"net/http"

	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/deppfellow/recruitly/internal/lib/payment"
	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/labstack/echo/v4"
)

type SubscriptionHandler struct {
	Handler
	subscriptions *service.SubscriptionService
}

func NewSubscriptionHandler(s *server.Server, subscriptions *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		Handler:       NewHandler(s),
		subscriptions: subscriptions,
	}
}

func (h *SubscriptionHandler) Create(c echo.Context, req *model.CreateSubscriptionRequest) (*model.Subscription, error) {
	if err := requireSelfOrAdmin(c, req.UserID); err != nil {
		return nil, err
	}
	return h.subscriptions.Create(c.Request().Context(), req)
}

func (h *SubscriptionHandler) Get(c echo.Context, req *model.UserIDParam) (*model.Subscription, error) {
	if err := requireSelfOrAdmin(c, req.UserID); err != nil {
		return nil, err
	}
	return h.subscriptions.Get(c.Request().Context(), req.UserID)
}

func (h *SubscriptionHandler) Cancel(c echo.Context, req *model.UserIDParam) (*model.Subscription, error) {
	if err := requireSelfOrAdmin(c, req.UserID); err != nil {
		return nil, err
	}
	return h.subscriptions.Cancel(c.Request().Context(), req.UserID)
}

// Webhook receives payment provider events. The signature covers the raw
// body, so the payload is read as bytes instead of being bound.
func (h *SubscriptionHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errs.NewBadRequestError("Could not read request body", false, nil, nil, nil)
	}

	signature := c.Request().Header.Get(payment.SignatureHeader)
	if err := h.subscriptions.HandleWebhook(c.Request().Context(), body, signature); err != nil {
		middleware.GetLogger(c).Warn().Err(err).Msg("payment webhook rejected")
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
