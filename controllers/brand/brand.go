package brandControllers

import (
	"errors"
	"net/http"

	"github.com/aromahub/perfume-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateBrandInput struct {
	Name    string `json:"name" binding:"required,min=3,max=100"`
	LogoURL string `json:"logo_url"`
}

// SellerSummary is the admin dashboard row produced by GetSellers.
type SellerSummary struct {
	SellerName   string `json:"seller_name"`
	SellerEmail  string `json:"seller_email"`
	ProductLimit int    `json:"product_limit"`
	BrandCount   int    `json:"brand_count"`
	ProductCount int    `json:"product_count"`
	OwnerLogo    string `json:"owner_logo"`
}

// GET /brands
func GetAllBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brands []models.Brand
		if err := db.Order("name DESC").Find(&brands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
			return
		}
		c.JSON(http.StatusOK, brands)
	}
}

// GET /seller/brands
// Brands the calling seller co-owns.
func GetBrandsByOwner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ownerID := userIDVal.(string)

		var brands []models.Brand
		if err := db.
			Joins("JOIN brand_owners ON brand_owners.brand_id = brands.id").
			Where("brand_owners.user_id = ?", ownerID).
			Find(&brands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
			return
		}
		c.JSON(http.StatusOK, brands)
	}
}

// GET /brands/:id
func GetBrandByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brand models.Brand
		if err := db.First(&brand, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brand"})
			return
		}
		c.JSON(http.StatusOK, brand)
	}
}

// POST /seller/brands
// Brand names dedup case-insensitively: submitting an existing name links the
// caller as another owner of that brand and keeps the original logo, the
// submitted one is discarded. Otherwise the brand is created and linked.
func CreateBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ownerID := userIDVal.(string)

		var input CreateBrandInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var brand models.Brand
		err := db.Where("LOWER(name) = LOWER(?)", input.Name).First(&brand).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up brand"})
			return
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			brand = models.Brand{Name: input.Name, LogoURL: input.LogoURL}
			if err := db.Create(&brand).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create brand"})
				return
			}
			link := models.BrandOwner{BrandID: brand.ID, UserID: ownerID}
			if err := db.Create(&link).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link brand owner"})
				return
			}
			c.JSON(http.StatusCreated, brand)
			return
		}

		// Existing brand: attach the caller as co-owner if not linked yet.
		var link models.BrandOwner
		err = db.Where("brand_id = ? AND user_id = ?", brand.ID, ownerID).First(&link).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			link = models.BrandOwner{BrandID: brand.ID, UserID: ownerID}
			if err := db.Create(&link).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link brand owner"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up brand owner"})
			return
		}

		c.JSON(http.StatusOK, brand)
	}
}

// GET /admin/sellers
// Per-seller rollup: brand count, product count across every co-owned brand,
// quota and the logo from the latest onboarding request.
func GetSellers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sellers []models.User
		if err := db.
			Preload("BrandOwners").
			Preload("BrandOwners.Brand").
			Preload("BrandOwners.Brand.Products").
			Where("role = ?", models.RoleSeller).
			Find(&sellers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sellers"})
			return
		}

		summaries := make([]SellerSummary, 0, len(sellers))
		for _, seller := range sellers {
			productCount := 0
			for _, bo := range seller.BrandOwners {
				productCount += len(bo.Brand.Products)
			}

			var latest models.SellerRequest
			logo := ""
			if err := db.Where("user_id = ?", seller.ID).
				Order("created_at DESC").
				First(&latest).Error; err == nil {
				logo = latest.LogoURL
			}

			summaries = append(summaries, SellerSummary{
				SellerName:   seller.Name,
				SellerEmail:  seller.Email,
				ProductLimit: seller.ProductLimit,
				BrandCount:   len(seller.BrandOwners),
				ProductCount: productCount,
				OwnerLogo:    logo,
			})
		}
		c.JSON(http.StatusOK, summaries)
	}
}
