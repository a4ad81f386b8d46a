package handler

import (
	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) Create(c echo.Context, req *model.CreateUserRequest) (*model.User, error) {
	return h.users.Create(c.Request().Context(), req)
}

// Register creates the account of the signed-in identity.
func (h *UserHandler) Register(c echo.Context, req *model.RegisterRequest) (*model.User, error) {
	authID := middleware.GetAuthID(c)
	if authID == "" {
		return nil, errs.NewUnauthorizedError("Unauthorized", false)
	}
	return h.users.Register(c.Request().Context(), authID, req)
}

func (h *UserHandler) Me(c echo.Context, _ *model.Empty) (*model.User, error) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return nil, errs.NewUnauthorizedError("Unauthorized", false)
	}
	return user, nil
}

func (h *UserHandler) GetByID(c echo.Context, req *model.IDParam) (*model.User, error) {
	return h.users.GetByID(c.Request().Context(), req.ID)
}

// Update lets users edit their own account. Role and identity changes
// are reserved for admins.
func (h *UserHandler) Update(c echo.Context, req *model.UpdateUserRequest) (*model.User, error) {
	if err := requireSelfOrAdmin(c, req.ID); err != nil {
		return nil, err
	}
	if !isAdmin(c) && (req.Role != nil || req.AuthID != nil) {
		return nil, errs.NewForbiddenError("Only admins can change roles", true)
	}
	return h.users.Update(c.Request().Context(), req)
}

func (h *UserHandler) List(c echo.Context, req *model.ListUsersRequest) (*model.PaginatedResponse[model.User], error) {
	return h.users.List(c.Request().Context(), req)
}

func (h *UserHandler) Delete(c echo.Context, req *model.IDParam) error {
	return h.users.Delete(c.Request().Context(), req.ID)
}
