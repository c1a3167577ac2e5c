package httpserver

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/fashionbrand/storefront/internal/logging"
	"github.com/fashionbrand/storefront/internal/service/search"
	"github.com/fashionbrand/storefront/internal/util"
)

type SearchHTTP struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "search")

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "query parameter q is required"})
	}
	if h.ES == nil {
		l.Warn("search_unavailable", "status", 503)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "search is unavailable"})
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, docs, err := search.Search(ctx, h.ES, h.Index, query, from, limit)
	if err != nil {
		l.Error("search_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total":    total,
		"page":     page,
		"size":     limit,
		"products": docs,
	})
}
