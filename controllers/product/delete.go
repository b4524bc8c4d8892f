package productController

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/zahraaAed/Douluxme-Backend/config"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

// DELETE /api/products/delete/:id (admin)
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		if product.Image != "" {
			imagePath := filepath.Join(config.App.UploadDir, "products", filepath.Base(product.Image))
			_ = os.Remove(imagePath)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
