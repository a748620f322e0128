package routes

import (
	adminController "github.com/aromahub/perfume-api/controllers/admin"
	brandControllers "github.com/aromahub/perfume-api/controllers/brand"
	productcontroller "github.com/aromahub/perfume-api/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the unauthenticated catalog endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Products ────────────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))

	// ──────────────── Categories ────────────────
	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/categories/:id", productcontroller.GetCategoryByID(db))
	r.GET("/categories/:id/products", productcontroller.GetProductsByCategory(db))

	// ──────────────── Brands ────────────────
	r.GET("/brands", brandControllers.GetAllBrands(db))
	r.GET("/brands/:id", brandControllers.GetBrandByID(db))
	r.GET("/brands/:id/products", productcontroller.GetProductsByBrand(db))

	// ──────────────── Hero carousel ────────────────
	r.GET("/hero-slides", adminController.GetActiveHeroSlides(db))
}
