package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storelabs/store-api/internal/api/middleware"
	"github.com/storelabs/store-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty user id
// proves the middleware ran. Reaching a protected handler without one means
// a route was wired without the gate — reject rather than proceed.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get(middleware.CtxUsername).(string)
	isAdmin, _ := c.Get(middleware.CtxIsAdmin).(bool)

	return domain.Identity{UserID: userID, Username: username, IsAdmin: isAdmin}, nil
}
