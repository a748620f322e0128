package routes

import (
	brandControllers "github.com/aromahub/perfume-api/controllers/brand"
	orderControllers "github.com/aromahub/perfume-api/controllers/order"
	productcontroller "github.com/aromahub/perfume-api/controllers/product"
	uploadControllers "github.com/aromahub/perfume-api/controllers/upload"
	"github.com/aromahub/perfume-api/middleware"
	"github.com/aromahub/perfume-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupSellerRoutes registers all "/seller/*" endpoints. Requires role SELLER.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB) {
	sellerGroup := r.Group("/seller")
	sellerGroup.Use(middleware.ResolveIdentity(db), middleware.RequireRole(models.RoleSeller))
	{
		// ──────────────── Product Management ────────────────
		productGroup := sellerGroup.Group("/products")
		{
			productGroup.POST("", productcontroller.CreateProduct(db))
			productGroup.GET("", productcontroller.GetSellerProducts(db))
			productGroup.PUT("/:id", productcontroller.UpdateProduct(db))
			productGroup.PATCH("/:id/quantity", productcontroller.AdjustProductQuantity(db))
			productGroup.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		// ──────────────── Brands ────────────────
		brandGroup := sellerGroup.Group("/brands")
		{
			brandGroup.POST("", brandControllers.CreateBrand(db))
			brandGroup.GET("", brandControllers.GetBrandsByOwner(db))
		}

		// ──────────────── Orders containing my products ────────────────
		sellerGroup.GET("/orders", orderControllers.GetSellerOrders(db))

		// ──────────────── Image upload ────────────────
		sellerGroup.POST("/uploads", uploadControllers.UploadImage())
	}
}
