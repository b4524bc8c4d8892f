package productController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/zahraaAed/Douluxme-Backend/middleware"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateProduct creates a product from a multipart form. The referenced nut,
// chocolate and category must all exist before anything is inserted, and the
// stored price is the unit price multiplied by the box size when one is given.
//
// POST /api/products/create (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		unitPrice, err := decimal.NewFromString(priceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		nutID, err := strconv.ParseUint(c.PostForm("nut_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nut_id"})
			return
		}
		chocolateID, err := strconv.ParseUint(c.PostForm("chocolate_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chocolate_id"})
			return
		}
		categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}

		var boxSize *int
		if v := c.PostForm("box_size"); v != "" {
			bs, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid box_size"})
				return
			}
			boxSize = &bs
		}

		// Referenced rows must resolve before any insert happens.
		var nut models.Nut
		var chocolate models.Chocolate
		var category models.Category
		if db.First(&nut, nutID).Error != nil ||
			db.First(&chocolate, chocolateID).Error != nil ||
			db.First(&category, categoryID).Error != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Nut, Chocolate, or Category not found"})
			return
		}

		extraNutIDs, err := parseIDList(c.PostForm("extra_nut_ids"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid extra_nut_ids"})
			return
		}
		extraChocolateIDs, err := parseIDList(c.PostForm("extra_chocolate_ids"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid extra_chocolate_ids"})
			return
		}

		if len(extraNutIDs) > 0 {
			var count int64
			if err := db.Model(&models.Nut{}).Where("id IN ?", extraNutIDs).Count(&count).Error; err != nil || count != int64(len(extraNutIDs)) {
				c.JSON(http.StatusNotFound, gin.H{"message": "One or more extra nuts not found"})
				return
			}
		}
		if len(extraChocolateIDs) > 0 {
			var count int64
			if err := db.Model(&models.Chocolate{}).Where("id IN ?", extraChocolateIDs).Count(&count).Error; err != nil || count != int64(len(extraChocolateIDs)) {
				c.JSON(http.StatusNotFound, gin.H{"message": "One or more extra chocolates not found"})
				return
			}
		}

		price, err := finalPrice(unitPrice, boxSize)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		// Image is optional; the stored value is just the generated filename.
		var image string
		if file, err := c.FormFile("image"); err == nil {
			image, err = saveProductImage(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
		}

		product := models.Product{
			Name:              name,
			NutID:             uint(nutID),
			ChocolateID:       uint(chocolateID),
			CategoryID:        uint(categoryID),
			UserID:            userID,
			BoxSize:           boxSize,
			Price:             price,
			Image:             image,
			ExtraNutIDs:       datatypes.NewJSONSlice(extraNutIDs),
			ExtraChocolateIDs: datatypes.NewJSONSlice(extraChocolateIDs),
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "productId": product.ID})
	}
}
