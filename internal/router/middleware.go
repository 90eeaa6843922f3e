package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "shiftbook/internal/errors"
)

// apiKeyHeader carries the shared-secret API key.
const apiKeyHeader = "access_token"

// APIKeyAuth gates a route group behind an equality check of the
// access_token header against the server-side secret.
func APIKeyAuth(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(apiKeyHeader) != key {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidAPIKey)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// RequestLogger logs each request with severity chosen by status class.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			var event *zerolog.Event
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event.
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", status).
				Str("remote_ip", c.RealIP()).
				Dur("latency", time.Since(start)).
				Msg("request")
			return nil
		}
	}
}

// ErrorHandler renders every error as the {"detail": ...} body the API
// promises, mapping domain errors through the shared taxonomy.
func ErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		detail := "internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			switch m := he.Message.(type) {
			case apperrors.ErrorResponse:
				detail = m.Detail
			case string:
				detail = m
			default:
				detail = http.StatusText(status)
			}
		} else {
			httpErr := apperrors.MapErrorToHTTP(err)
			status = httpErr.StatusCode
			detail = httpErr.Detail
		}

		if status >= 500 {
			log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			if err := c.NoContent(status); err != nil {
				log.Error().Err(err).Msg("write error response")
			}
			return
		}
		if err := c.JSON(status, apperrors.ErrorResponse{Detail: detail}); err != nil {
			log.Error().Err(err).Msg("write error response")
		}
	}
}
