package routes

import (
	"github.com/gin-gonic/gin"
	chocolateController "github.com/zahraaAed/Douluxme-Backend/controllers/chocolate"
	"github.com/zahraaAed/Douluxme-Backend/middleware"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

func SetupChocolateRoutes(api *gin.RouterGroup, db *gorm.DB) {
	chocolates := api.Group("/chocolates")
	{
		chocolates.GET("/get", chocolateController.GetChocolates(db))
		chocolates.GET("/get/:id", chocolateController.GetChocolateByID(db))

		admin := chocolates.Group("", middleware.Authenticate, middleware.Authorize(models.RoleAdmin))
		{
			admin.POST("/create", chocolateController.CreateChocolate(db))
			admin.PATCH("/update/:id", chocolateController.UpdateChocolate(db))
			admin.DELETE("/delete/:id", chocolateController.DeleteChocolate(db))
		}
	}
}
