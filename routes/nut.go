package routes

import (
	"github.com/gin-gonic/gin"
	nutController "github.com/zahraaAed/Douluxme-Backend/controllers/nut"
	"github.com/zahraaAed/Douluxme-Backend/middleware"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

func SetupNutRoutes(api *gin.RouterGroup, db *gorm.DB) {
	nuts := api.Group("/nuts")
	{
		nuts.GET("/get", nutController.GetNuts(db))
		nuts.GET("/get/:id", nutController.GetNutByID(db))

		admin := nuts.Group("", middleware.Authenticate, middleware.Authorize(models.RoleAdmin))
		{
			admin.POST("/create", nutController.CreateNut(db))
			admin.PATCH("/update/:id", nutController.UpdateNut(db))
			admin.DELETE("/delete/:id", nutController.DeleteNut(db))
		}
	}
}
