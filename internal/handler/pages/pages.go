// Package pages renders the storefront pages that need no form handling.
package pages

import (
	"net/http"

	"grocer/internal/service"
	"grocer/internal/session"

	"github.com/labstack/echo/v4"
)

// Static 回傳只需渲染模板的頁面
func Static(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, name, nil)
	}
}

// OrdersHandler 顯示目前使用者的訂單，由 RequireLogin 保護
func OrdersHandler(orders *service.Orders) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := session.FromContext(c)
		list, err := orders.History(c.Request().Context(), s.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}
		return c.Render(http.StatusOK, "orders", map[string]any{"Orders": list})
	}
}
