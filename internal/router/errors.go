package router

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"grocer/internal/dto"

	"github.com/labstack/echo/v4"
)

// ErrorHandler answers JSON under /api and renders the error page elsewhere.
// Internal errors are logged with the request id; clients only see the status text.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok && m != "" {
				msg = m
			} else {
				msg = http.StatusText(code)
			}
		}
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)
			// 不把內部錯誤細節回給使用者
			msg = http.StatusText(code)
		}

		var werr error
		switch {
		case c.Request().Method == http.MethodHead:
			werr = c.NoContent(code)
		case strings.HasPrefix(c.Request().URL.Path, "/api/"):
			werr = c.JSON(code, dto.HTTPError{Message: msg})
		default:
			werr = c.Render(code, "error", map[string]any{"Code": code, "Message": msg})
		}
		if werr != nil {
			logger.Error("write error response", slog.Any("error", werr))
		}
	}
}
