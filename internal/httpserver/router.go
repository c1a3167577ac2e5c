package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/fashionbrand/storefront/internal/middleware/auth"
)

type Deps struct {
	Sessions *authmw.Sessions

	AuthHandler    *AuthHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	CatalogHandler *CatalogHTTP
	SearchHandler  *SearchHTTP
	AdminHandler   *AdminHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/logout", d.AuthHandler.Logout)
	auth.GET("/me", d.AuthHandler.Me, d.Sessions.RequireDealer)

	cart := api.Group("/cart", d.Sessions.RequireDealer)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PATCH("/:id", d.CartHandler.UpdateQuantity)
	cart.DELETE("/:id", d.CartHandler.RemoveFromCart)

	orders := api.Group("/orders", d.Sessions.RequireDealer)
	orders.POST("", d.OrderHandler.PlaceOrder)
	orders.GET("", d.OrderHandler.MyOrders)

	catalog := api.Group("/catalog")
	catalog.GET("/categories", d.CatalogHandler.Categories)
	catalog.GET("/products/:slug", d.CatalogHandler.Product)
	catalog.GET("/:category", d.CatalogHandler.Category)
	catalog.GET("/:category/:subcategory", d.CatalogHandler.SubCategory)

	api.GET("/search", d.SearchHandler.Search)

	admin := api.Group("/admin")
	admin.POST("/login", d.AdminHandler.Login)
	admin.POST("/logout", d.AdminHandler.Logout)
	admin.POST("/create", d.AdminHandler.Create)

	back := admin.Group("", d.Sessions.RequireAdmin)
	back.GET("/categories", d.AdminHandler.ListCategories)
	back.POST("/categories", d.AdminHandler.CreateCategory)
	back.PUT("/categories/:id", d.AdminHandler.UpdateCategory)
	back.DELETE("/categories/:id", d.AdminHandler.DeleteCategory)

	back.POST("/subcategories", d.AdminHandler.CreateSubCategory)
	back.PUT("/subcategories/:id", d.AdminHandler.UpdateSubCategory)
	back.DELETE("/subcategories/:id", d.AdminHandler.DeleteSubCategory)

	back.GET("/products", d.AdminHandler.ListProducts)
	back.POST("/products", d.AdminHandler.CreateProduct)
	back.PUT("/products/:id", d.AdminHandler.UpdateProduct)
	back.DELETE("/products/:id", d.AdminHandler.DeleteProduct)

	back.POST("/designs", d.AdminHandler.CreateDesign)
	back.DELETE("/designs/:id", d.AdminHandler.DeleteDesign)

	back.POST("/colors", d.AdminHandler.CreateColor)
	back.DELETE("/colors/:id", d.AdminHandler.DeleteColor)

	back.GET("/orders", d.AdminHandler.ListOrders)
	back.PATCH("/orders/:id", d.AdminHandler.UpdateOrderStatus)

	back.GET("/config", d.AdminHandler.GetConfig)
	back.POST("/config", d.AdminHandler.SaveConfig)

	back.GET("/users", d.AdminHandler.ListUsers)
	back.DELETE("/users/:id", d.AdminHandler.DeleteUser)

	back.POST("/uploads", d.AdminHandler.Upload)
}
