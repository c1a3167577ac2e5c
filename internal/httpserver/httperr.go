package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fashionbrand/storefront/internal/service"
)

// writeServiceErr maps service sentinels onto HTTP responses. Anything
// unrecognized is logged and reported as a 500.
func writeServiceErr(c echo.Context, l *slog.Logger, event string, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(event, "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrExists):
		l.Warn(event, "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrEmptyCart):
		l.Warn(event, "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Your cart is empty"})
	case errors.Is(err, service.ErrHasOrders):
		l.Warn(event, "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrCredentials):
		l.Warn(event, "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	case errors.Is(err, service.ErrNotFound):
		l.Warn(event, "status", 404, "error", err)
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		l.Warn(event, "status", 409, "error", err)
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		l.Error(event, "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
