package adminController

import (
	"errors"
	"net/http"

	"github.com/aromahub/perfume-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HeroSlideInput struct {
	Title      string `json:"title" binding:"required,min=3"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"image_url"`
	ButtonText string `json:"button_text"`
	Href       string `json:"href"`
	IsActive   *bool  `json:"is_active"`
	Order      int    `json:"order" binding:"required,min=1"`
}

type HeroSlideImageInput struct {
	ImageURL string `json:"image_url" binding:"required"`
}

// GET /hero-slides
// The storefront carousel: active slides in display order.
func GetActiveHeroSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slides []models.HeroSlide
		if err := db.Where("is_active = ?", true).Order("display_order ASC").Find(&slides).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hero slides"})
			return
		}
		c.JSON(http.StatusOK, slides)
	}
}

// GET /admin/hero-slides
func GetAllHeroSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slides []models.HeroSlide
		if err := db.Order("display_order ASC").Find(&slides).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hero slides"})
			return
		}
		c.JSON(http.StatusOK, slides)
	}
}

// GET /admin/hero-slides/:id
func GetHeroSlideByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slide models.HeroSlide
		if err := db.First(&slide, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Hero slide not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hero slide"})
			return
		}
		c.JSON(http.StatusOK, slide)
	}
}

// POST /admin/hero-slides
func CreateHeroSlide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input HeroSlideInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		slide := models.HeroSlide{
			Title:      input.Title,
			Subtitle:   input.Subtitle,
			ImageURL:   input.ImageURL,
			ButtonText: input.ButtonText,
			Href:       input.Href,
			IsActive:   isActive,
			Rank:       input.Order,
		}
		if err := db.Create(&slide).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hero slide"})
			return
		}
		c.JSON(http.StatusCreated, slide)
	}
}

// PUT /admin/hero-slides/:id
func UpdateHeroSlide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slide models.HeroSlide
		if err := db.First(&slide, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hero slide not found"})
			return
		}

		var input HeroSlideInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		isActive := slide.IsActive
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		updates := map[string]interface{}{
			"title":         input.Title,
			"subtitle":      input.Subtitle,
			"button_text":   input.ButtonText,
			"href":          input.Href,
			"is_active":     isActive,
			"display_order": input.Order,
		}
		if input.ImageURL != "" {
			updates["image_url"] = input.ImageURL
		}

		if err := db.Model(&slide).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hero slide"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Slide updated successfully", "slide": slide})
	}
}

// PUT /admin/hero-slides/:id/image
func UpdateHeroSlideImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slide models.HeroSlide
		if err := db.First(&slide, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hero slide not found"})
			return
		}

		var input HeroSlideImageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := db.Model(&slide).Update("image_url", input.ImageURL).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update slide image"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Slide image updated"})
	}
}

// DELETE /admin/hero-slides/:id
func DeleteHeroSlide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.HeroSlide{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hero slide"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hero slide not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Slide deleted successfully"})
	}
}
