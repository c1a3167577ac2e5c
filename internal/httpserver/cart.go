package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fashionbrand/storefront/internal/logging"
	authmw "github.com/fashionbrand/storefront/internal/middleware/auth"
	"github.com/fashionbrand/storefront/internal/service"
	"github.com/fashionbrand/storefront/internal/util"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	user, ok := authmw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "please log in"})
	}

	items, err := h.Svc.List(ctx, user.ID)
	if err != nil {
		return writeServiceErr(c, l, "get_cart_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	user, ok := authmw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "please log in"})
	}

	var req struct {
		DesignID uint  `json:"design_id"`
		ColorID  *uint `json:"color_id"`
		Quantity uint  `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	item, err := h.Svc.Add(ctx, user.ID, service.AddToCartInput{
		DesignID: req.DesignID,
		ColorID:  req.ColorID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeServiceErr(c, l, "add_to_cart_error", err)
	}

	l.Info("item added to cart", "user_id", user.ID, "design_id", req.DesignID)
	return c.JSON(http.StatusCreated, item)
}

func (h *CartHTTP) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	user, ok := authmw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "please log in"})
	}

	itemID := util.ParseIntDefault(c.Param("id"), 0)
	if itemID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	item, err := h.Svc.UpdateQuantity(ctx, user.ID, uint(itemID), req.Quantity)
	if err != nil {
		return writeServiceErr(c, l, "update_cart_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	user, ok := authmw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "please log in"})
	}

	itemID := util.ParseIntDefault(c.Param("id"), 0)
	if itemID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	if err := h.Svc.Remove(ctx, user.ID, uint(itemID)); err != nil {
		return writeServiceErr(c, l, "remove_from_cart_error", err)
	}

	l.Info("item removed from cart", "user_id", user.ID, "item_id", itemID)
	return c.JSON(http.StatusOK, echo.Map{"message": "item removed"})
}
