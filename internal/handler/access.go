package handler

import (
	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/labstack/echo/v4"
)

func isAdmin(c echo.Context) bool {
	return middleware.GetUserRole(c) == model.RoleAdmin
}

// requireSelfOrAdmin lets admins act on any user and everyone else only
// on their own account.
func requireSelfOrAdmin(c echo.Context, userID int64) error {
	if isAdmin(c) {
		return nil
	}
	if current := middleware.GetUserID(c); current == 0 || current != userID {
		return errs.NewForbiddenError("You are not allowed to perform this action", true)
	}
	return nil
}
