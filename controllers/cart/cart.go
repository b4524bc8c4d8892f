package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zahraaAed/Douluxme-Backend/middleware"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

type CartRequest struct {
	UserID    uint `json:"userId" binding:"required"`
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// POST /api/carts/create
func CreateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := db.First(&models.User{}, req.UserID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err := db.First(&models.Product{}, req.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		cart := models.Cart{
			UserID:    req.UserID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}
		if err := db.Create(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart item"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Cart item created successfully", "cartItemId": cart.ID})
	}
}

// GetCartsByUserID lists the caller's own cart rows. The user id comes from
// the credential, never from a parameter, so one user cannot read another's
// cart.
//
// GET /api/carts/get
func GetCartsByUserID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var carts []models.Cart
		if err := db.
			Where("user_id = ?", userID).
			Preload("Product").
			Preload("User").
			Find(&carts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carts"})
			return
		}

		c.JSON(http.StatusOK, carts)
	}
}

// GetCartsByProductID lists cart rows holding a product. The path keeps the
// historical `/get/:id` shape.
//
// GET /api/carts/get/:id
func GetCartsByProductID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var carts []models.Cart
		if err := db.
			Where("product_id = ?", productID).
			Preload("Product").
			Preload("User").
			Find(&carts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carts"})
			return
		}

		c.JSON(http.StatusOK, carts)
	}
}

// PATCH /api/carts/update/:id — full-record replace.
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart ID"})
			return
		}

		var cart models.Cart
		if err := db.First(&cart, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
			return
		}

		var req CartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		cart.UserID = req.UserID
		cart.ProductID = req.ProductID
		cart.Quantity = req.Quantity
		if err := db.Save(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item updated successfully"})
	}
}

// DELETE /api/carts/delete/:id
func DeleteCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart ID"})
			return
		}

		var cart models.Cart
		if err := db.First(&cart, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
			return
		}

		if err := db.Delete(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted successfully"})
	}
}
