package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/NSVEGUR/bookmarks-api/internal/api/metrics"
	"github.com/NSVEGUR/bookmarks-api/internal/core/ports"
)

// BookmarkHandler handles HTTP requests for bookmark operations.
type BookmarkHandler struct {
	service ports.BookmarkService
}

func NewBookmarkHandler(service ports.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

// Create handles POST /bookmarks.
//
// @Summary      Create a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookmarkRequest  true  "Bookmark details"
// @Success      201   {object}  domain.Bookmark
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /bookmarks [post]
func (h *BookmarkHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bookmark, err := h.service.Create(c.Request().Context(), user.ID, ports.CreateBookmarkInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.BookmarksWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, bookmark)
}

// List handles GET /bookmarks.
//
// @Summary      List the caller's bookmarks
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Bookmark
// @Failure      401  {object}  errorResponse
// @Router       /bookmarks [get]
func (h *BookmarkHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	bookmarks, err := h.service.ListAll(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookmarks)
}

// Get handles GET /bookmarks/:id.
//
// @Summary      Get a bookmark by id
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Bookmark id"
// @Success      200  {object}  domain.Bookmark
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /bookmarks/{id} [get]
func (h *BookmarkHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	id, err := bookmarkID(c)
	if err != nil {
		return err
	}

	bookmark, err := h.service.GetOne(c.Request().Context(), user.ID, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookmark)
}

// Update handles PATCH /bookmarks/:id.
//
// @Summary      Edit a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Bookmark id"
// @Param        body  body      editBookmarkRequest  true  "Fields to change"
// @Success      200   {object}  domain.Bookmark
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /bookmarks/{id} [patch]
func (h *BookmarkHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	id, err := bookmarkID(c)
	if err != nil {
		return err
	}

	var req editBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bookmark, err := h.service.Update(c.Request().Context(), user.ID, id, ports.BookmarkPatch{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return err
	}

	metrics.BookmarksWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, bookmark)
}

// Delete handles DELETE /bookmarks/:id.
//
// @Summary      Delete a bookmark
// @Tags         bookmarks
// @Security     BearerAuth
// @Param        id  path  int  true  "Bookmark id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /bookmarks/{id} [delete]
func (h *BookmarkHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	id, err := bookmarkID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, id); err != nil {
		return err
	}

	metrics.BookmarksWritesTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// bookmarkID parses the :id path parameter.
func bookmarkID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid bookmark id")
	}
	return id, nil
}
