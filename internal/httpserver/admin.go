package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fashionbrand/storefront/internal/logging"
	authmw "github.com/fashionbrand/storefront/internal/middleware/auth"
	"github.com/fashionbrand/storefront/internal/service"
	"github.com/fashionbrand/storefront/internal/storage"
	"github.com/fashionbrand/storefront/internal/util"
)

type AdminHTTP struct {
	Auth    *service.AuthService
	Svc     *service.AdminService
	Orders  *service.OrderService
	Config  *service.ConfigService
	Catalog *service.CatalogService
	Images  *storage.ImageStore
}

func (h *AdminHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("admin_login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	admin, token, err := h.Auth.AdminLogin(ctx, req.Email, req.Password)
	if err != nil {
		return writeServiceErr(c, l, "admin_login_error", err)
	}
	c.SetCookie(authmw.CreateCookie(token, time.Now().Add(24*time.Hour)))

	l.Info("admin logged in", "admin_id", admin.ID)
	return c.JSON(http.StatusOK, admin)
}

func (h *AdminHTTP) Logout(c echo.Context) error {
	c.SetCookie(authmw.ExpireCookie())
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

func (h *AdminHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.create")

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Secret   string `json:"secret"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("admin_create_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	admin, err := h.Auth.CreateAdmin(ctx, req.Name, req.Email, req.Password, req.Secret)
	if err != nil {
		return writeServiceErr(c, l, "admin_create_error", err)
	}

	l.Info("admin created", "admin_id", admin.ID)
	return c.JSON(http.StatusCreated, admin)
}

func (h *AdminHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.orders")

	orders, err := h.Orders.ListAll(ctx)
	if err != nil {
		return writeServiceErr(c, l, "list_orders_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}

func (h *AdminHTTP) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.order_status")

	orderID := util.ParseIntDefault(c.Param("id"), 0)
	if orderID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	var req struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("order_status_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	order, err := h.Orders.UpdateStatus(ctx, uint(orderID), req.Status, req.Notes)
	if err != nil {
		return writeServiceErr(c, l, "order_status_error", err)
	}

	l.Info("order status updated", "order_id", order.ID, "order_status", order.Status)
	return c.JSON(http.StatusOK, order)
}

func (h *AdminHTTP) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.config")

	values, err := h.Config.All(ctx)
	if err != nil {
		return writeServiceErr(c, l, "get_config_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"config": values})
}

func (h *AdminHTTP) SaveConfig(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.config")

	var req map[string]string
	if err := c.Bind(&req); err != nil {
		l.Warn("save_config_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no values provided"})
	}

	if err := h.Config.Save(ctx, req); err != nil {
		return writeServiceErr(c, l, "save_config_error", err)
	}

	l.Info("config saved", "keys", len(req))
	return c.JSON(http.StatusOK, echo.Map{"message": "config saved"})
}

func (h *AdminHTTP) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.users")

	users, err := h.Svc.ListUsers(ctx)
	if err != nil {
		return writeServiceErr(c, l, "list_users_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

func (h *AdminHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.users")

	userID := util.ParseIntDefault(c.Param("id"), 0)
	if userID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	if err := h.Svc.DeleteUser(ctx, uint(userID)); err != nil {
		return writeServiceErr(c, l, "delete_user_error", err)
	}

	l.Info("user deleted", "user_id", userID)
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted"})
}

func (h *AdminHTTP) Upload(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.upload")

	if h.Images == nil {
		l.Warn("upload_unavailable", "status", 503)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "uploads are unavailable"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		l.Warn("upload_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}

	url, err := h.Images.Upload(ctx, file)
	if err != nil {
		l.Error("upload_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	l.Info("image uploaded", "url", url)
	return c.JSON(http.StatusCreated, echo.Map{"url": url})
}
