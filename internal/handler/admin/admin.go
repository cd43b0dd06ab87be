// Package admin serves the administrator login and dashboard pages.
package admin

import (
	"errors"
	"net/http"

	"grocer/internal/database"
	"grocer/internal/dto"
	"grocer/internal/metrics"
	"grocer/internal/service"
	"grocer/internal/session"
	"grocer/internal/store"

	"github.com/labstack/echo/v4"
)

const invalidAdmin = "Invalid admin credentials."

// LoginPage 顯示管理員登入表單
func LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_login", nil)
}

// RedirectToLogin 處理 GET /admin_login_action
func RedirectToLogin(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/admin_login")
}

// LoginActionHandler 驗證管理員帳號密碼
// 任何失敗都 flash 同一則訊息並導回管理員登入頁
func LoginActionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := session.FromContext(c)
		fail := func() error {
			metrics.LoginOutcome("admin", false)
			s.AddFlash("danger", invalidAdmin)
			return c.Redirect(http.StatusSeeOther, "/admin_login")
		}

		var req dto.AdminLoginRequest
		if err := c.Bind(&req); err != nil || c.Validate(&req) != nil {
			return fail()
		}

		user, err := service.AdminLogin(c.Request().Context(), db, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return fail()
			}
			return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}

		metrics.LoginOutcome("admin", true)
		s.Login(*user)
		return c.Redirect(http.StatusSeeOther, "/admin_dashboard")
	}
}

// DashboardHandler 列出所有訂單與意見回饋，由 RequireAdmin 保護
func DashboardHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		orders, err := store.ListOrders(ctx, db)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}
		feedback, err := store.ListFeedback(ctx, db)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}
		return c.Render(http.StatusOK, "admin_dashboard", map[string]any{
			"Orders":   orders,
			"Feedback": feedback,
		})
	}
}
