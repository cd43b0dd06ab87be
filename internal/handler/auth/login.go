// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"grocer/internal/database"
	"grocer/internal/dto"
	"grocer/internal/metrics"
	"grocer/internal/service"
	"grocer/internal/session"

	"github.com/labstack/echo/v4"
)

const invalidLogin = "Invalid email or password."

// LoginPage 顯示登入表單
func LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login", nil)
}

// LoginHandler 使用 Email/Password 驗證並寫入 session
// 失敗一律回 200 並重新顯示表單，不透露是帳號還是密碼錯誤
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := session.FromContext(c)

		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil || c.Validate(&req) != nil {
			metrics.LoginOutcome("user", false)
			s.AddFlash("danger", invalidLogin)
			return c.Render(http.StatusOK, "login", nil)
		}

		user, err := service.Login(c.Request().Context(), db, req.Email, req.Password)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidCredentials) {
				return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
			}
			metrics.LoginOutcome("user", false)
			s.AddFlash("danger", invalidLogin)
			return c.Render(http.StatusOK, "login", nil)
		}

		metrics.LoginOutcome("user", true)
		s.Login(*user)
		s.AddFlash("success", "Login successful!")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
}

// LogoutHandler 清除 session（含購物車）後回首頁
func LogoutHandler(c echo.Context) error {
	session.FromContext(c).Clear()
	return c.Redirect(http.StatusSeeOther, "/")
}

// DashboardPage 登入後的使用者首頁，由 RequireLogin 保護
func DashboardPage(c echo.Context) error {
	s := session.FromContext(c)
	return c.Render(http.StatusOK, "dashboard", map[string]any{"Username": s.Username})
}
