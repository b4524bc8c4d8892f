package routes

import (
	"github.com/gin-gonic/gin"
	productController "github.com/zahraaAed/Douluxme-Backend/controllers/product"
	"github.com/zahraaAed/Douluxme-Backend/middleware"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("/get", productController.GetProducts(db))
		products.GET("/get/:id", productController.GetProductByID(db))

		admin := products.Group("", middleware.Authenticate, middleware.Authorize(models.RoleAdmin))
		{
			admin.POST("/create", productController.CreateProduct(db))
			admin.PUT("/update/:id", productController.UpdateProduct(db))
			admin.DELETE("/delete/:id", productController.DeleteProduct(db))
			admin.GET("/export-excel", productController.ExportProductsToExcel(db))
		}
	}
}
