package routes

import (
	cartControllers "github.com/aromahub/perfume-api/controllers/cart"
	orderControllers "github.com/aromahub/perfume-api/controllers/order"
	sellerControllers "github.com/aromahub/perfume-api/controllers/seller"
	userControllers "github.com/aromahub/perfume-api/controllers/user"
	"github.com/aromahub/perfume-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Any authenticated role.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ResolveIdentity(db))
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/", cartControllers.AddToCart(db))
			cartGroup.GET("/count", cartControllers.CountCartItems(db))
			cartGroup.DELETE("/items/:item_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
		}

		// ──────────────── Checkout & Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/", orderControllers.CreateOrder(db))
			orderGroup.POST("/:orderID/items", orderControllers.AddOrderItem(db))
			orderGroup.GET("/", orderControllers.GetUserOrders(db))
		}

		// ──────────────── Seller Onboarding ────────────────
		requestGroup := userGroup.Group("/seller-requests")
		{
			requestGroup.POST("/", sellerControllers.SubmitSellerRequest(db))
			requestGroup.GET("/current", sellerControllers.GetCurrentSellerRequest(db))
		}
	}
}
