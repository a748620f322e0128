package routes

import (
	adminController "github.com/aromahub/perfume-api/controllers/admin"
	brandControllers "github.com/aromahub/perfume-api/controllers/brand"
	cartControllers "github.com/aromahub/perfume-api/controllers/cart"
	orderControllers "github.com/aromahub/perfume-api/controllers/order"
	productcontroller "github.com/aromahub/perfume-api/controllers/product"
	sellerControllers "github.com/aromahub/perfume-api/controllers/seller"
	uploadControllers "github.com/aromahub/perfume-api/controllers/upload"
	userControllers "github.com/aromahub/perfume-api/controllers/user"
	"github.com/aromahub/perfume-api/middleware"
	"github.com/aromahub/perfume-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires role ADMIN.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ResolveIdentity(db), middleware.RequireRole(models.RoleAdmin))
	{
		// ─────────── User & Seller Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/sellers", brandControllers.GetSellers(db))
		adminGroup.PUT("/sellers/product-limit", productcontroller.UpdateProductLimit(db))

		// ─────────── Seller Onboarding ───────────
		requestGroup := adminGroup.Group("/seller-requests")
		{
			requestGroup.GET("", sellerControllers.ListSellerRequests(db))
			requestGroup.POST("/:id/approve", sellerControllers.ApproveSellerRequest(db))
			requestGroup.POST("/:id/reject", sellerControllers.RejectSellerRequest(db))
		}

		// ─────────── Orders ───────────
		orderGroup := adminGroup.Group("/orders")
		{
			orderGroup.GET("", orderControllers.GetAdminOrders(db))
			orderGroup.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(db))
			orderGroup.DELETE("/:orderID", orderControllers.DeleteOrder(db))
		}

		// ─────────── Catalog Management ───────────
		adminGroup.POST("/categories", productcontroller.CreateCategory(db))
		adminGroup.GET("/products/export-excel", productcontroller.ExportProductsToExcel(db))

		// ─────────── Hero Carousel ───────────
		heroGroup := adminGroup.Group("/hero-slides")
		{
			heroGroup.GET("", adminController.GetAllHeroSlides(db))
			heroGroup.GET("/:id", adminController.GetHeroSlideByID(db))
			heroGroup.POST("", adminController.CreateHeroSlide(db))
			heroGroup.PUT("/:id", adminController.UpdateHeroSlide(db))
			heroGroup.PUT("/:id/image", adminController.UpdateHeroSlideImage(db))
			heroGroup.DELETE("/:id", adminController.DeleteHeroSlide(db))
		}

		// ─────────── Support ───────────
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(db))
		adminGroup.POST("/uploads", uploadControllers.UploadImage())
	}
}
