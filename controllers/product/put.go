package productcontroller

import (
	"errors"
	"net/http"

	"github.com/aromahub/perfume-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	ImageURL    *string  `json:"image_url"`
	CategoryID  *uint    `json:"category_id"`
	BrandID     *uint    `json:"brand_id"`
}

type AdjustQuantityInput struct {
	Delta int `json:"delta" binding:"required"`
}

type UpdateProductLimitInput struct {
	Email string `json:"email" binding:"required,email"`
	Limit int    `json:"limit" binding:"required,min=0"`
}

// PUT /seller/products/:id
// Partial update; only the caller who created the product may edit it.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
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

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.Quantity != nil {
			updates["quantity"] = *input.Quantity
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}
		if input.CategoryID != nil {
			updates["category_id"] = *input.CategoryID
		}
		if input.BrandID != nil {
			updates["brand_id"] = *input.BrandID
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, product)
	}
}

// PATCH /seller/products/:id/quantity
// Relative stock adjustment. The delta may be negative but can never push the
// stock below zero; the guard sits in the UPDATE itself.
func AdjustProductQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sellerID := userIDVal.(string)

		var input AdjustQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if product.SellerID != sellerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this product"})
			return
		}

		result := db.Model(&models.Product{}).
			Where("id = ? AND quantity + ? >= 0", product.ID, input.Delta).
			Update("quantity", gorm.Expr("quantity + ?", input.Delta))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust quantity"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity cannot go below zero"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Quantity adjusted"})
	}
}

// PUT /admin/sellers/product-limit
// Admin raises or lowers a seller's quota, addressed by email.
func UpdateProductLimit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateProductLimitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, "email = ?", input.Email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch seller"})
			return
		}

		if err := db.Model(&user).Update("product_limit", input.Limit).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product limit"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product limit updated"})
	}
}
