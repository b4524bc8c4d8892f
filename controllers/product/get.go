package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

// GET /api/products/get
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.
			Preload("Nut").
			Preload("Chocolate").
			Preload("Category").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/get/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.
			Preload("Nut").
			Preload("Chocolate").
			Preload("Category").
			First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
