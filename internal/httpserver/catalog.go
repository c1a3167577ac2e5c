package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fashionbrand/storefront/internal/logging"
	"github.com/fashionbrand/storefront/internal/service"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) Categories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.categories")

	tree, err := h.Svc.CategoryTree(ctx)
	if err != nil {
		return writeServiceErr(c, l, "list_categories_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": tree})
}

func (h *CatalogHTTP) Category(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.category")

	cat, err := h.Svc.CategoryBySlug(ctx, c.Param("category"))
	if err != nil {
		return writeServiceErr(c, l, "get_category_error", err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CatalogHTTP) SubCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.subcategory")

	sub, err := h.Svc.SubCategoryBySlug(ctx, c.Param("subcategory"))
	if err != nil {
		return writeServiceErr(c, l, "get_subcategory_error", err)
	}
	return c.JSON(http.StatusOK, sub)
}

func (h *CatalogHTTP) Product(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.product")

	product, err := h.Svc.ProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		return writeServiceErr(c, l, "get_product_error", err)
	}
	return c.JSON(http.StatusOK, product)
}
