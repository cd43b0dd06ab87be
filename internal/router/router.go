// File: internal/router/router.go
package router

import (
	"log/slog"

	"grocer/internal/database"
	"grocer/internal/dto"
	"grocer/internal/handler"
	"grocer/internal/handler/admin"
	"grocer/internal/handler/api"
	"grocer/internal/handler/auth"
	"grocer/internal/handler/pages"
	"grocer/internal/metrics"
	"grocer/internal/middleware"
	"grocer/internal/service"
	"grocer/internal/session"
	"grocer/internal/view"

	"github.com/labstack/echo/v4"
)

// Deps 是路由需要的共用元件
type Deps struct {
	DB       database.DB
	Sessions *session.Manager
	Catalog  *service.Catalog
	Orders   *service.Orders
	Logger   *slog.Logger
}

// Setup 註冊 renderer、中介層與所有路由
func Setup(e *echo.Echo, d Deps) error {
	renderer, err := view.New()
	if err != nil {
		return err
	}
	e.Renderer = renderer
	if e.Validator == nil {
		e.Validator = dto.NewValidator()
	}
	e.HTTPErrorHandler = ErrorHandler(d.Logger)

	e.Use(d.Sessions.Middleware())
	e.Use(metrics.Middleware())

	// 頁面
	e.GET("/", pages.Static("index"))
	e.GET("/catalog", pages.Static("catalog"))
	e.GET("/cart", pages.Static("cart"))
	e.GET("/feedback", pages.Static("feedback"))
	e.GET("/orders", pages.OrdersHandler(d.Orders), middleware.RequireLogin)

	// 註冊、登入
	e.GET("/register", auth.RegisterPage)
	e.POST("/register", auth.RegisterHandler(d.DB))
	e.GET("/login", auth.LoginPage)
	e.POST("/login", auth.LoginHandler(d.DB))
	e.GET("/logout", auth.LogoutHandler)
	e.GET("/dashboard", auth.DashboardPage, middleware.RequireLogin)

	// 管理員
	e.GET("/admin_login", admin.LoginPage)
	e.GET("/admin_login_action", admin.RedirectToLogin)
	e.POST("/admin_login_action", admin.LoginActionHandler(d.DB))
	e.GET("/admin_dashboard", admin.DashboardHandler(d.DB), middleware.RequireAdmin)

	// JSON API
	apiGroup := e.Group("/api")
	apiGroup.GET("/ping", handler.PingHandler(d.DB))
	apiGroup.GET("/products", api.ProductsHandler(d.Catalog))
	apiGroup.GET("/cart", api.GetCartHandler)
	apiGroup.POST("/cart", api.AddToCartHandler)
	apiGroup.POST("/orders", api.PlaceOrderHandler(d.Orders))
	apiGroup.POST("/feedback", api.FeedbackHandler(d.DB))

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	return nil
}
