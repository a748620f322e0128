package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public catalog and
// the user, seller and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public catalog (no middleware)
	SetupPublicRoutes(r, db)

	// Any authenticated user
	SetupUserRoutes(r, db)

	// Role SELLER
	SetupSellerRoutes(r, db)

	// Role ADMIN
	SetupAdminRoutes(r, db)
}
