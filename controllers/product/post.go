package productcontroller

import (
	"errors"
	"net/http"

	"github.com/aromahub/perfume-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrNotSeller    = errors.New("user is not a seller")
	ErrProductLimit = errors.New("you have reached your maximum allowed number of products")
)

type CreateProductInput struct {
	Name        string  `json:"name" binding:"required,min=3,max=100"`
	Description string  `json:"description" binding:"required,min=10,max=500"`
	Price       float64 `json:"price" binding:"required,min=1"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	ImageURL    string  `json:"image_url"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	BrandID     uint    `json:"brand_id" binding:"required"`
}

// createProduct inserts the product after the quota check, all inside one
// transaction. The quota counts every product of every brand the seller
// co-owns, not just products the seller created, and blocks at
// count >= productLimit.
func createProduct(db *gorm.DB, sellerID string, input CreateProductInput) (*models.Product, error) {
	var product models.Product
	err := db.Transaction(func(tx *gorm.DB) error {
		var seller models.User
		if err := tx.First(&seller, "id = ?", sellerID).Error; err != nil {
			return err
		}
		if seller.Role != models.RoleSeller {
			return ErrNotSeller
		}

		var total int64
		if err := tx.Model(&models.Product{}).
			Joins("JOIN brand_owners ON brand_owners.brand_id = products.brand_id").
			Where("brand_owners.user_id = ?", sellerID).
			Count(&total).Error; err != nil {
			return err
		}
		if total >= int64(seller.ProductLimit) {
			return ErrProductLimit
		}

		product = models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Quantity:    input.Quantity,
			ImageURL:    input.ImageURL,
			IsActive:    true,
			CategoryID:  input.CategoryID,
			BrandID:     input.BrandID,
			SellerID:    sellerID,
		}
		return tx.Create(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// POST /seller/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sellerID := userIDVal.(string)

		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := createProduct(db, sellerID, input)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotSeller):
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			case errors.Is(err, ErrProductLimit):
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			}
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
