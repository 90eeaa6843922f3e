package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "shiftbook/internal/errors"
	"shiftbook/internal/pagination"
)

// timestampLayouts accepted in bodies and query params. The upstream clients
// send zoneless timestamps and bare dates alongside RFC3339.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

func parseOptionalTimestamp(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseTimestamp(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// idParam parses a numeric path parameter, failing with 422 on anything else.
func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{
			Detail: fmt.Sprintf("path parameter %s must be an integer", name),
		})
	}
	return uint(id), nil
}

// dateQueryParam parses an optional date/timestamp query parameter.
func dateQueryParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := parseTimestamp(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{
			Detail: fmt.Sprintf("query parameter %s must be a date or timestamp", name),
		})
	}
	return &t, nil
}

// pageParams reads page/size, falling back to the pagination defaults.
func pageParams(c echo.Context) (page, size int) {
	page = 1
	size = pagination.DefaultSize
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := c.QueryParam("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			size = n
		}
	}
	return page, size
}
