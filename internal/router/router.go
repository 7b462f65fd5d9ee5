// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"gocart/internal/cache"
	"gocart/internal/database"
	"gocart/internal/handler"
	"gocart/internal/handler/auth"
	"gocart/internal/handler/categories"
	"gocart/internal/handler/orders"
	"gocart/internal/handler/products"
	"gocart/internal/middleware"
	"gocart/internal/notify"
	"gocart/internal/service"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, tokens *service.TokenService, n *notify.Notifier) {
	api := e.Group("/api/v1")

	requireSignIn := middleware.RequireSignIn(tokens)
	requireAdmin := middleware.RequireAdmin(tokens, db)

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, rdb))

	// 註冊、登入與帳號救援
	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(db))
	apiAuth.POST("/login", auth.LoginHandler(db, tokens))
	apiAuth.POST("/forgot-password", auth.ForgotPasswordHandler(db))
	apiAuth.PUT("/profile", auth.UpdateProfileHandler(db), requireSignIn)
	apiAuth.GET("/user-auth", auth.ProbeHandler(), requireSignIn)
	apiAuth.GET("/admin-auth", auth.ProbeHandler(), requireAdmin)

	// 訂單查詢與管理
	apiAuth.GET("/orders", orders.MyOrdersHandler(db), requireSignIn)
	apiAuth.GET("/all-orders", orders.AllOrdersHandler(db), requireAdmin)
	apiAuth.PUT("/order-status/:orderId", orders.OrderStatusHandler(db, n), requireAdmin)

	// 分類
	apiCategory := api.Group("/category")
	apiCategory.POST("/create-category", categories.CreateCategoryHandler(db, rdb), requireAdmin)
	apiCategory.PUT("/update-category/:id", categories.UpdateCategoryHandler(db, rdb), requireAdmin)
	apiCategory.GET("/get-category", categories.ListCategoriesHandler(db, rdb))
	apiCategory.GET("/single-category/:slug", categories.GetCategoryHandler(db))
	apiCategory.DELETE("/delete-category/:id", categories.DeleteCategoryHandler(db, rdb), requireAdmin)

	// 商品
	apiProduct := api.Group("/product")
	apiProduct.POST("/create-product", products.CreateProductHandler(db), requireAdmin)
	apiProduct.PUT("/update-product/:pid", products.UpdateProductHandler(db), requireAdmin)
	apiProduct.DELETE("/delete-product/:pid", products.DeleteProductHandler(db), requireAdmin)
	apiProduct.GET("/get-product", products.ListProductsHandler(db))
	apiProduct.GET("/get-product/:slug", products.GetProductHandler(db))
	apiProduct.GET("/search/:keyword", products.SearchProductsHandler(db))
	apiProduct.POST("/product-filters", products.FilterProductsHandler(db))
	apiProduct.GET("/product-category/:slug", products.ProductsByCategoryHandler(db))
	apiProduct.GET("/related-product/:pid/:cid", products.RelatedProductsHandler(db))

	// 結帳
	api.POST("/order/checkout", orders.CheckoutHandler(db, n), requireSignIn)
}
