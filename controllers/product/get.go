package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aromahub/perfume-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /products/:id
// Catalog detail view: only active products resolve here. Soft-deleted rows
// stay reachable to the order read paths, just not through the catalog.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		err = db.
			Preload("Brand").
			Preload("Brand.BrandOwners").
			Preload("Brand.BrandOwners.User").
			Preload("Category").
			Where("id = ? AND is_active = ?", id, true).
			First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
