package productcontroller

import (
	"net/http"

	"github.com/aromahub/perfume-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DELETE /seller/products/:id
// Soft delete: flips isActive off so the row survives for order history while
// vanishing from every catalog read.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sellerID := userIDVal.(string)

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if product.SellerID != sellerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this product"})
			return
		}

		if err := db.Model(&product).Update("is_active", false).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
