package productController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UpdateProduct applies partial-field semantics: absent form fields leave
// the stored values unchanged. When price or box_size change, the stored
// price is recomputed from the supplied unit price.
//
// PUT /api/products/update/:id (admin)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}

		if v := c.PostForm("nut_id"); v != "" {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nut_id"})
				return
			}
			if db.First(&models.Nut{}, id).Error != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Nut not found"})
				return
			}
			product.NutID = uint(id)
		}
		if v := c.PostForm("chocolate_id"); v != "" {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chocolate_id"})
				return
			}
			if db.First(&models.Chocolate{}, id).Error != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Chocolate not found"})
				return
			}
			product.ChocolateID = uint(id)
		}
		if v := c.PostForm("category_id"); v != "" {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			if db.First(&models.Category{}, id).Error != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
				return
			}
			product.CategoryID = uint(id)
		}

		boxSize := product.BoxSize
		if v := c.PostForm("box_size"); v != "" {
			bs, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid box_size"})
				return
			}
			boxSize = &bs
		}

		if v := c.PostForm("price"); v != "" {
			unitPrice, err := decimal.NewFromString(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			price, err := finalPrice(unitPrice, boxSize)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			product.Price = price
		} else if v := c.PostForm("box_size"); v != "" {
			// The stored price is already unit x box size, so a new box size
			// without a unit price leaves nothing to recompute from.
			c.JSON(http.StatusBadRequest, gin.H{"error": "price is required when box_size changes"})
			return
		}
		product.BoxSize = boxSize

		if v := c.PostForm("extra_nut_ids"); v != "" {
			ids, err := parseIDList(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid extra_nut_ids"})
				return
			}
			product.ExtraNutIDs = datatypes.NewJSONSlice(ids)
		}
		if v := c.PostForm("extra_chocolate_ids"); v != "" {
			ids, err := parseIDList(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid extra_chocolate_ids"})
				return
			}
			product.ExtraChocolateIDs = datatypes.NewJSONSlice(ids)
		}

		if file, err := c.FormFile("image"); err == nil {
			filename, err := saveProductImage(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.Image = filename
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
	}
}
