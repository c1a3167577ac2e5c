package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fashionbrand/storefront/internal/logging"
	authmw "github.com/fashionbrand/storefront/internal/middleware/auth"
	"github.com/fashionbrand/storefront/internal/service"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place")

	user, ok := authmw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "please log in"})
	}

	placed, err := h.Svc.Place(ctx, user)
	if err != nil {
		return writeServiceErr(c, l, "place_order_error", err)
	}

	l.Info("order placed", "user_id", user.ID, "order_id", placed.Order.ID)
	return c.JSON(http.StatusCreated, placed)
}

func (h *OrderHTTP) MyOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	user, ok := authmw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "please log in"})
	}

	orders, err := h.Svc.ListForUser(ctx, user.ID)
	if err != nil {
		return writeServiceErr(c, l, "list_orders_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}
