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

// RegisterPage 顯示註冊表單
func RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register", nil)
}

// RegisterHandler 建立一般使用者帳號
// 成功後 flash 並 303 導向登入頁；帳號或 Email 重複時重新顯示表單
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := session.FromContext(c)

		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			s.AddFlash("danger", "Invalid input!")
			return c.Render(http.StatusBadRequest, "register", nil)
		}
		if err := c.Validate(&req); err != nil {
			s.AddFlash("danger", "Invalid input!")
			return c.Render(http.StatusBadRequest, "register", nil)
		}

		_, err := service.Register(c.Request().Context(), db, req.Name, req.Email, req.Password, false)
		if err != nil {
			if errors.Is(err, service.ErrEmptyPassword) || errors.Is(err, service.ErrPasswordTooLong) {
				s.AddFlash("danger", "Invalid input!")
				return c.Render(http.StatusBadRequest, "register", nil)
			}
			if database.IsUniqueViolation(err) {
				s.AddFlash("danger", "Username or email already exists.")
				return c.Render(http.StatusOK, "register", nil)
			}
			return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}

		metrics.Registrations.Inc()
		s.AddFlash("success", "Registration successful! Please login.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
}
