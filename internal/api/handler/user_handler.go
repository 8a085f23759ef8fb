package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NSVEGUR/bookmarks-api/internal/core/ports"
)

// CacheInvalidator drops cached user entries after a profile edit.
// A nil invalidator is a no-op.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, id int64)
}

type UserHandler struct {
	userService ports.UserService
	cache       CacheInvalidator
}

func NewUserHandler(userService ports.UserService, cache CacheInvalidator) *UserHandler {
	return &UserHandler{userService: userService, cache: cache}
}

// Me returns the authenticated user. The Auth middleware already resolved the
// record, so no extra lookup happens here.
//
// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Edit applies a partial update to the authenticated user's profile.
//
// @Summary      Edit the current user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      editUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [patch]
func (h *UserHandler) Edit(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req editUserRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.userService.EditProfile(c.Request().Context(), user.ID, ports.UserPatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Request().Context(), user.ID)
	}

	return c.JSON(http.StatusOK, updated)
}
