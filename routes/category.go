package routes

import (
	"github.com/gin-gonic/gin"
	categoryController "github.com/zahraaAed/Douluxme-Backend/controllers/category"
	"github.com/zahraaAed/Douluxme-Backend/middleware"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

func SetupCategoryRoutes(api *gin.RouterGroup, db *gorm.DB) {
	categories := api.Group("/categories")
	{
		categories.GET("/get", categoryController.GetCategories(db))
		categories.GET("/get/:id", categoryController.GetCategoryByID(db))

		admin := categories.Group("", middleware.Authenticate, middleware.Authorize(models.RoleAdmin))
		{
			admin.POST("/create", categoryController.CreateCategory(db))
			admin.PATCH("/update/:id", categoryController.UpdateCategory(db))
			admin.DELETE("/delete/:id", categoryController.DeleteCategory(db))
		}
	}
}
