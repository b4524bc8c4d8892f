package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/zahraaAed/Douluxme-Backend/controllers/cart"
	"github.com/zahraaAed/Douluxme-Backend/middleware"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	carts := api.Group("/carts", middleware.Authenticate, middleware.Authorize(models.RoleCustomer))
	{
		carts.POST("/create", cartControllers.CreateCart(db))
		carts.GET("/get", cartControllers.GetCartsByUserID(db))
		carts.GET("/get/:id", cartControllers.GetCartsByProductID(db))
		carts.PATCH("/update/:id", cartControllers.UpdateCart(db))
		carts.DELETE("/delete/:id", cartControllers.DeleteCart(db))
	}
}
