package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fashionbrand/storefront/internal/logging"
	"github.com/fashionbrand/storefront/internal/service"
	"github.com/fashionbrand/storefront/internal/util"
)

func pathID(c echo.Context) (uint, bool) {
	id := util.ParseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *AdminHTTP) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.categories")

	tree, err := h.Catalog.CategoryTree(ctx)
	if err != nil {
		return writeServiceErr(c, l, "list_categories_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": tree})
}

func (h *AdminHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.categories")

	var req struct {
		Name      string `json:"name"`
		Slug      string `json:"slug"`
		Image     string `json:"image"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_category_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	cat, err := h.Svc.CreateCategory(ctx, service.CategoryInput{
		Name: req.Name, Slug: req.Slug, Image: req.Image, SortOrder: req.SortOrder,
	})
	if err != nil {
		return writeServiceErr(c, l, "create_category_error", err)
	}

	l.Info("category created", "category_id", cat.ID)
	return c.JSON(http.StatusCreated, cat)
}

func (h *AdminHTTP) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.categories")

	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req struct {
		Name      string `json:"name"`
		Slug      string `json:"slug"`
		Image     string `json:"image"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_category_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	cat, err := h.Svc.UpdateCategory(ctx, id, service.CategoryInput{
		Name: req.Name, Slug: req.Slug, Image: req.Image, SortOrder: req.SortOrder,
	})
	if err != nil {
		return writeServiceErr(c, l, "update_category_error", err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *AdminHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.categories")

	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Svc.DeleteCategory(ctx, id); err != nil {
		return writeServiceErr(c, l, "delete_category_error", err)
	}

	l.Info("category deleted", "category_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "category deleted"})
}

func (h *AdminHTTP) CreateSubCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.subcategories")

	var req struct {
		CategoryID uint   `json:"category_id"`
		Name       string `json:"name"`
		Slug       string `json:"slug"`
		Image      string `json:"image"`
		SortOrder  int    `json:"sort_order"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_subcategory_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	sub, err := h.Svc.CreateSubCategory(ctx, service.SubCategoryInput{
		CategoryID: req.CategoryID, Name: req.Name, Slug: req.Slug,
		Image: req.Image, SortOrder: req.SortOrder,
	})
	if err != nil {
		return writeServiceErr(c, l, "create_subcategory_error", err)
	}

	l.Info("subcategory created", "subcategory_id", sub.ID)
	return c.JSON(http.StatusCreated, sub)
}

func (h *AdminHTTP) UpdateSubCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.subcategories")

	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req struct {
		CategoryID uint   `json:"category_id"`
		Name       string `json:"name"`
		Slug       string `json:"slug"`
		Image      string `json:"image"`
		SortOrder  int    `json:"sort_order"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_subcategory_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	sub, err := h.Svc.UpdateSubCategory(ctx, id, service.SubCategoryInput{
		CategoryID: req.CategoryID, Name: req.Name, Slug: req.Slug,
		Image: req.Image, SortOrder: req.SortOrder,
	})
	if err != nil {
		return writeServiceErr(c, l, "update_subcategory_error", err)
	}
	return c.JSON(http.StatusOK, sub)
}

func (h *AdminHTTP) DeleteSubCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.subcategories")

	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Svc.DeleteSubCategory(ctx, id); err != nil {
		return writeServiceErr(c, l, "delete_subcategory_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "subcategory deleted"})
}

func (h *AdminHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.products")

	products, err := h.Svc.ListProducts(ctx)
	if err != nil {
		return writeServiceErr(c, l, "list_products_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

func (h *AdminHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.products")

	var req struct {
		SubCategoryID  uint   `json:"sub_category_id"`
		Name           string `json:"name"`
		Slug           string `json:"slug"`
		Description    string `json:"description"`
		HasColorChoice bool   `json:"has_color_choice"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	product, err := h.Svc.CreateProduct(ctx, service.ProductInput{
		SubCategoryID: req.SubCategoryID, Name: req.Name, Slug: req.Slug,
		Description: req.Description, HasColorChoice: req.HasColorChoice,
	})
	if err != nil {
		return writeServiceErr(c, l, "create_product_error", err)
	}

	l.Info("product created", "product_id", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *AdminHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.products")

	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req struct {
		SubCategoryID  uint   `json:"sub_category_id"`
		Name           string `json:"name"`
		Slug           string `json:"slug"`
		Description    string `json:"description"`
		HasColorChoice bool   `json:"has_color_choice"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	product, err := h.Svc.UpdateProduct(ctx, id, service.ProductInput{
		SubCategoryID: req.SubCategoryID, Name: req.Name, Slug: req.Slug,
		Description: req.Description, HasColorChoice: req.HasColorChoice,
	})
	if err != nil {
		return writeServiceErr(c, l, "update_product_error", err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *AdminHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.products")

	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		return writeServiceErr(c, l, "delete_product_error", err)
	}

	l.Info("product deleted", "product_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "product deleted"})
}

func (h *AdminHTTP) CreateDesign(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.designs")

	var req struct {
		ProductID uint   `json:"product_id"`
		Name      string `json:"name"`
		Image     string `json:"image"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_design_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	design, err := h.Svc.CreateDesign(ctx, service.DesignInput{
		ProductID: req.ProductID, Name: req.Name, Image: req.Image, SortOrder: req.SortOrder,
	})
	if err != nil {
		return writeServiceErr(c, l, "create_design_error", err)
	}

	l.Info("design created", "design_id", design.ID)
	return c.JSON(http.StatusCreated, design)
}

func (h *AdminHTTP) DeleteDesign(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.designs")

	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Svc.DeleteDesign(ctx, id); err != nil {
		return writeServiceErr(c, l, "delete_design_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "design deleted"})
}

func (h *AdminHTTP) CreateColor(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.colors")

	var req struct {
		ProductID uint   `json:"product_id"`
		ColorName string `json:"color_name"`
		ColorHex  string `json:"color_hex"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_color_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	color, err := h.Svc.CreateColor(ctx, service.ColorInput{
		ProductID: req.ProductID, ColorName: req.ColorName, ColorHex: req.ColorHex,
	})
	if err != nil {
		return writeServiceErr(c, l, "create_color_error", err)
	}

	l.Info("color created", "color_id", color.ID)
	return c.JSON(http.StatusCreated, color)
}

func (h *AdminHTTP) DeleteColor(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.colors")

	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Svc.DeleteColor(ctx, id); err != nil {
		return writeServiceErr(c, l, "delete_color_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "color deleted"})
}
