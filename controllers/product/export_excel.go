package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

// ExportProductsToExcel streams the whole catalog as an xlsx download.
//
// GET /api/products/export-excel (admin)
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
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

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Nut", "Chocolate", "Category",
			"BoxSize", "Price", "Image", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			if p.Nut != nil {
				row.AddCell().SetValue(p.Nut.Variety)
			} else {
				row.AddCell().SetValue("")
			}
			if p.Chocolate != nil {
				row.AddCell().SetValue(p.Chocolate.Type)
			} else {
				row.AddCell().SetValue("")
			}
			if p.Category != nil {
				row.AddCell().SetValue(p.Category.Name)
			} else {
				row.AddCell().SetValue("")
			}
			if p.BoxSize != nil {
				row.AddCell().SetValue(*p.BoxSize)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.Price.String())
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
