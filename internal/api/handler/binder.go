package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// strictBinder decodes JSON bodies with DisallowUnknownFields so that
// unrecognized fields are rejected instead of silently dropped. Non-JSON
// requests fall through to Echo's default binder.
type strictBinder struct {
	fallback echo.DefaultBinder
}

// NewBinder returns a strictBinder ready to be assigned to echo.Echo.Binder.
func NewBinder() *strictBinder {
	return &strictBinder{}
}

// Bind satisfies the echo.Binder interface.
func (b *strictBinder) Bind(i any, c echo.Context) error {
	req := c.Request()
	ctype := req.Header.Get(echo.HeaderContentType)

	if req.ContentLength != 0 && strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		dec := json.NewDecoder(req.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(i); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
		}
		return b.fallback.BindPathParams(c, i)
	}

	return b.fallback.Bind(i, c)
}
