package sellerControllers

import (
	"errors"
	"net/http"

	"github.com/aromahub/perfume-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SellerRequestInput struct {
	StoreName   string `json:"store_name" binding:"required,min=3,max=100"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	LogoURL     string `json:"logo_url"`
}

// POST /user/seller-requests
// Files an onboarding request. Only one PENDING request may exist at a time;
// after a rejection the user is free to file again.
func SubmitSellerRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input SellerRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var pending models.SellerRequest
		err := db.Where("user_id = ? AND status = ?", userID, models.RequestStatusPending).
			First(&pending).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "You already have a pending request"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing requests"})
			return
		}

		request := models.SellerRequest{
			UserID:      userID,
			Name:        input.StoreName,
			Description: input.Description,
			Phone:       input.Phone,
			Address:     input.Address,
			LogoURL:     input.LogoURL,
			Status:      models.RequestStatusPending,
		}
		if err := db.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Your request has been sent successfully!", "request": request})
	}
}

// GET /user/seller-requests/current
// The user's latest request by CreatedAt, null when none was ever filed.
func GetCurrentSellerRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var request models.SellerRequest
		err := db.Where("user_id = ?", userID).Order("created_at DESC").First(&request).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, nil)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch request"})
			return
		}
		c.JSON(http.StatusOK, request)
	}
}

// GET /admin/seller-requests
func ListSellerRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var requests []models.SellerRequest
		if err := db.Preload("User").Order("created_at DESC").Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch seller requests"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// POST /admin/seller-requests/:id/approve
// Marks the request approved and promotes the user to SELLER, both in one
// transaction. There is no demotion path.
func ApproveSellerRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Param("id")

		var request models.SellerRequest
		if err := db.First(&request, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch request"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&request).Update("status", models.RequestStatusApproved).Error; err != nil {
				return err
			}
			return tx.Model(&models.User{}).
				Where("id = ?", request.UserID).
				Update("role", models.RoleSeller).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve request"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Request approved"})
	}
}

// POST /admin/seller-requests/:id/reject
// Status only; the user's role is untouched and a new request may be filed.
func RejectSellerRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Param("id")

		var request models.SellerRequest
		if err := db.First(&request, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch request"})
			return
		}

		if err := db.Model(&request).Update("status", models.RequestStatusRejected).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject request"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Request rejected"})
	}
}
