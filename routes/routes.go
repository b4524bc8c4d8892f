package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires every resource group under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	SetupUserRoutes(api, db)
	SetupNutRoutes(api, db)
	SetupChocolateRoutes(api, db)
	SetupCategoryRoutes(api, db)
	SetupProductRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupOrderRoutes(api, db)
	SetupOrderDetailRoutes(api, db)
	SetupFeedbackRoutes(api, db)
}
