// Package handler holds endpoints shared by every deployment.
package handler

import (
	"context"
	"net/http"
	"time"

	"grocer/internal/database"
	"grocer/internal/dto"

	"github.com/labstack/echo/v4"
)

// pingTimeout 避免資料庫卡住時健康檢查一起卡住
var pingTimeout = 2 * time.Second

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /ping [get]
func PingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			c.Logger().Errorf("ping %s database: %v", db.Dialect(), err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
