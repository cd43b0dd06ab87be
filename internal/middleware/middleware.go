package middleware

import (
	"net/http"

	"grocer/internal/session"

	"github.com/labstack/echo/v4"
)

// RequireLogin 未登入時導向登入頁
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !session.FromContext(c).LoggedIn() {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// RequireAdmin 非管理員一律導向管理員登入頁
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := session.FromContext(c)
		if !s.LoggedIn() || !s.IsAdmin {
			return c.Redirect(http.StatusSeeOther, "/admin_login")
		}
		return next(c)
	}
}
