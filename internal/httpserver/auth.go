package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fashionbrand/storefront/internal/logging"
	authmw "github.com/fashionbrand/storefront/internal/middleware/auth"
	"github.com/fashionbrand/storefront/internal/service"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req struct {
		Name      string `json:"name"`
		Phone     string `json:"phone"`
		ShopName  string `json:"shop_name"`
		Address   string `json:"address"`
		Pincode   string `json:"pincode"`
		GSTNumber string `json:"gst_number"`
		Password  string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	user, err := h.Svc.Register(ctx, service.RegisterInput{
		Name:      req.Name,
		Phone:     req.Phone,
		ShopName:  req.ShopName,
		Address:   req.Address,
		Pincode:   req.Pincode,
		GSTNumber: req.GSTNumber,
		Password:  req.Password,
	})
	if err != nil {
		return writeServiceErr(c, l, "register_error", err)
	}

	exp := time.Now().Add(service.SessionTTL)
	token, err := h.Svc.MintToken(user.ID, service.RoleDealer, exp)
	if err != nil {
		l.Error("register_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	c.SetCookie(authmw.CreateCookie(token, exp))

	l.Info("user registered", "user_id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	user, token, err := h.Svc.Login(ctx, req.Phone, req.Password)
	if err != nil {
		return writeServiceErr(c, l, "login_error", err)
	}
	c.SetCookie(authmw.CreateCookie(token, time.Now().Add(service.SessionTTL)))

	l.Info("user logged in", "user_id", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	c.SetCookie(authmw.ExpireCookie())
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

func (h *AuthHTTP) Me(c echo.Context) error {
	user, ok := authmw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "please log in"})
	}
	return c.JSON(http.StatusOK, user)
}
