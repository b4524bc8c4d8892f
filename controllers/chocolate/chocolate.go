package chocolateController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

type ChocolateRequest struct {
	Type  string  `json:"type" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

type UpdateChocolateRequest struct {
	Type  *string  `json:"type"`
	Price *float64 `json:"price"`
}

// POST /api/chocolates/create
func CreateChocolate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChocolateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		var existing models.Chocolate
		if err := db.Where("type = ?", req.Type).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Chocolate already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		chocolate := models.Chocolate{Type: req.Type, Price: req.Price}
		if err := db.Create(&chocolate).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Chocolate already exists"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Chocolate created successfully", "ChocolateId": chocolate.ID})
	}
}

// GET /api/chocolates/get
func GetChocolates(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var chocolates []models.Chocolate
		if err := db.Find(&chocolates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chocolates"})
			return
		}
		c.JSON(http.StatusOK, chocolates)
	}
}

// GET /api/chocolates/get/:id
func GetChocolateByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var chocolate models.Chocolate
		if err := db.First(&chocolate, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Chocolate not found"})
			return
		}
		c.JSON(http.StatusOK, chocolate)
	}
}

// PATCH /api/chocolates/update/:id
func UpdateChocolate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var chocolate models.Chocolate
		if err := db.First(&chocolate, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Chocolate not found"})
			return
		}

		var req UpdateChocolateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if req.Type != nil {
			chocolate.Type = *req.Type
		}
		if req.Price != nil {
			chocolate.Price = *req.Price
		}

		if err := db.Save(&chocolate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update chocolate"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Chocolate updated successfully", "chocolate": chocolate})
	}
}

// DELETE /api/chocolates/delete/:id
// Products referencing the chocolate are deleted first, in one transaction.
func DeleteChocolate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var chocolate models.Chocolate
		if err := db.First(&chocolate, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Chocolate not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("chocolate_id = ?", chocolate.ID).Delete(&models.Product{}).Error; err != nil {
				return err
			}
			return tx.Delete(&chocolate).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete chocolate"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Chocolate deleted successfully"})
	}
}
