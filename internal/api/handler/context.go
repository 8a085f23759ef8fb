package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NSVEGUR/bookmarks-api/internal/core/domain"
)

// ctxUser extracts the user injected by the Auth middleware. Its presence
// proves the middleware ran; a protected handler reached without it is a
// wiring bug and is rejected with 401 rather than a panic.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
