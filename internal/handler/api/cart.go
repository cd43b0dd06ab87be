package api

import (
	"errors"
	"fmt"
	"net/http"

	"grocer/internal/dto"
	"grocer/internal/service"
	"grocer/internal/session"

	"github.com/labstack/echo/v4"
)

// AddToCartHandler 將商品名稱加入 session 購物車
// @Summary     Add to cart
// @Description 不檢查商品是否存在，名稱原樣存入購物車；購物車已滿時回 400
// @Tags        cart
// @Accept      json
// @Produce     json
// @Param       body body     dto.AddToCartRequest true "商品名稱"
// @Success     200  {object} dto.CartResponse
// @Failure     400  {object} dto.HTTPError
// @Router      /cart [post]
func AddToCartHandler(c echo.Context) error {
	var req dto.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Invalid input!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Invalid input!"})
	}

	s := session.FromContext(c)
	if err := s.AddToCart(req.ProductName); err != nil {
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Your cart is full!"})
	}
	return c.JSON(http.StatusOK, dto.CartResponse{
		Message: fmt.Sprintf("%s added to cart", req.ProductName),
		Cart:    s.CartItems(),
	})
}

// GetCartHandler 回傳購物車內容
// @Summary     Get cart
// @Tags        cart
// @Produce     json
// @Success     200 {array} string
// @Router      /cart [get]
func GetCartHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, session.FromContext(c).CartItems())
}

// PlaceOrderHandler 將購物車寫成訂單並清空購物車
// @Summary     Place order
// @Description 先檢查購物車是否為空 (400)，再檢查是否登入 (401)
// @Tags        orders
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /orders [post]
func PlaceOrderHandler(orders *service.Orders) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := session.FromContext(c)
		_, err := orders.Place(c.Request().Context(), s.UserID, s.CartItems())
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Your cart is empty!"})
		case errors.Is(err, service.ErrNotLoggedIn):
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "User not logged in!"})
		case err != nil:
			return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}
		s.EmptyCart()
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Order placed successfully!"})
	}
}
