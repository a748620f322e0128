package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/aromahub/perfume-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// paginationParams reads skip/take from the query string, with the catalog's
// default page size of 10.
func paginationParams(c *gin.Context) (int, int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	take, err := strconv.Atoi(c.DefaultQuery("take", "10"))
	if err != nil || take <= 0 {
		take = 10
	}
	return skip, take
}

// GET /products?search=&skip=&take=
// Catalog listing: active products only, case-insensitive substring search on
// the name, name-descending order.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, take := paginationParams(c)

		query := db.Model(&models.Product{}).
			Preload("Brand").
			Preload("Category").
			Where("is_active = ?", true)

		if search := c.Query("search"); search != "" {
			query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
		}

		var products []models.Product
		if err := query.Order("name DESC").Offset(skip).Limit(take).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /categories/:id/products?search=&brand_id=&skip=&take=
// Active products of one category, optionally narrowed by brand. Search here
// covers name and description.
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("id")
		skip, take := paginationParams(c)

		query := db.Model(&models.Product{}).
			Preload("Brand").
			Preload("Category").
			Where("category_id = ? AND is_active = ?", categoryID, true)

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
		}
		if brandID := c.Query("brand_id"); brandID != "" {
			query = query.Where("brand_id = ?", brandID)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Offset(skip).Limit(take).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /brands/:id/products?search=&category_id=&skip=&take=
// Mirror of the category listing, keyed by brand with an optional category
// filter.
func GetProductsByBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		brandID := c.Param("id")
		skip, take := paginationParams(c)

		query := db.Model(&models.Product{}).
			Preload("Brand").
			Preload("Category").
			Where("brand_id = ? AND is_active = ?", brandID, true)

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
		}
		if categoryID := c.Query("category_id"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Offset(skip).Limit(take).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /seller/products
// Every product the seller created, active or not, newest first.
func GetSellerProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sellerID := userIDVal.(string)

		var products []models.Product
		if err := db.
			Preload("Brand").
			Preload("Category").
			Where("seller_id = ?", sellerID).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
