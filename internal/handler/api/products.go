// Package api serves the JSON endpoints used by the catalog and cart pages.
package api

import (
	"net/http"

	"grocer/internal/service"

	"github.com/labstack/echo/v4"
)

// ProductsHandler 列出所有商品
// @Summary     List products
// @Description 依 id 排序回傳所有商品；沒有商品時回傳空陣列
// @Tags        products
// @Produce     json
// @Success     200 {array}  model.Product
// @Failure     500 {object} dto.HTTPError
// @Router      /products [get]
func ProductsHandler(catalog *service.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := catalog.Products(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}
		return c.JSON(http.StatusOK, products)
	}
}
