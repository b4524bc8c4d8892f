package nutController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

type NutRequest struct {
	Variety string  `json:"variety" binding:"required"`
	Price   float64 `json:"price" binding:"required"`
}

type UpdateNutRequest struct {
	Variety *string  `json:"variety"`
	Price   *float64 `json:"price"`
}

// POST /api/nuts/create
func CreateNut(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		var existing models.Nut
		if err := db.Where("variety = ?", req.Variety).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nut already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		nut := models.Nut{Variety: req.Variety, Price: req.Price}
		if err := db.Create(&nut).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nut already exists"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Nut created successfully", "nutId": nut.ID})
	}
}

// GET /api/nuts/get
func GetNuts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var nuts []models.Nut
		if err := db.Find(&nuts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nuts"})
			return
		}
		c.JSON(http.StatusOK, nuts)
	}
}

// GET /api/nuts/get/:id
func GetNutByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var nut models.Nut
		if err := db.First(&nut, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Nut not found"})
			return
		}
		c.JSON(http.StatusOK, nut)
	}
}

// PATCH /api/nuts/update/:id
func UpdateNut(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var nut models.Nut
		if err := db.First(&nut, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Nut not found"})
			return
		}

		var req UpdateNutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if req.Variety != nil {
			nut.Variety = *req.Variety
		}
		if req.Price != nil {
			nut.Price = *req.Price
		}

		if err := db.Save(&nut).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update nut"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Nut updated successfully", "nut": nut})
	}
}

// DELETE /api/nuts/delete/:id
// Removal is blocked while any product still references the nut.
func DeleteNut(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var nut models.Nut
		if err := db.First(&nut, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Nut not found"})
			return
		}

		var count int64
		if err := db.Model(&models.Product{}).Where("nut_id = ?", nut.ID).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check product references"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nut is still referenced by products"})
			return
		}

		if err := db.Delete(&nut).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete nut"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Nut deleted successfully"})
	}
}
