// Package handlertest builds echo contexts wired like the real server.
package handlertest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"grocer/internal/dto"
	"grocer/internal/session"
	"grocer/internal/view"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// NewEcho returns an echo instance with the page renderer and validator.
func NewEcho(t testing.TB) *echo.Echo {
	t.Helper()
	r, err := view.New()
	require.NoError(t, err)
	e := echo.New()
	e.Renderer = r
	e.Validator = dto.NewValidator()
	return e
}

// Form builds a POST context with an urlencoded body.
func Form(e *echo.Echo, path string, values url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return newContext(e, req)
}

// JSON builds a context with a JSON body; an empty body sends none.
func JSON(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return newContext(e, req)
}

func Get(e *echo.Echo, path string) (echo.Context, *httptest.ResponseRecorder) {
	return newContext(e, httptest.NewRequest(http.MethodGet, path, nil))
}

// Session returns the session attached to ctx.
func Session(ctx echo.Context) *session.Session {
	return session.FromContext(ctx)
}

func newContext(e *echo.Echo, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
