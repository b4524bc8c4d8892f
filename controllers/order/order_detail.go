package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

type OrderDetailRequest struct {
	OrderID   uint    `json:"orderId" binding:"required"`
	ProductID uint    `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"required"`
}

// POST /api/orderDetails/create (admin)
func CreateOrderDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OrderDetailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := db.First(&models.Order{}, req.OrderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		if err := db.First(&models.Product{}, req.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		detail := models.OrderDetail{
			OrderID:   req.OrderID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Price:     req.Price,
		}
		if err := db.Create(&detail).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order detail"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Order detail created successfully", "orderDetailId": detail.ID})
	}
}

// GET /api/orderDetails/get (admin)
func GetOrderDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var details []models.OrderDetail
		if err := db.Preload("Product").Preload("Order").Find(&details).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order details"})
			return
		}
		c.JSON(http.StatusOK, details)
	}
}

// GET /api/orderDetails/get/:id (admin)
func GetOrderDetailByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order detail ID"})
			return
		}

		var detail models.OrderDetail
		if err := db.Preload("Product").Preload("Order").First(&detail, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order detail not found"})
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// GET /api/orderDetails/order/:orderId (admin)
func GetOrderDetailsByOrderID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
			return
		}

		var details []models.OrderDetail
		if err := db.
			Where("order_id = ?", orderID).
			Preload("Product", func(tx *gorm.DB) *gorm.DB {
				return tx.Select("id", "name", "price", "image")
			}).
			Find(&details).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order details"})
			return
		}

		if len(details) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No order details found for this order"})
			return
		}

		c.JSON(http.StatusOK, details)
	}
}

// PATCH /api/orderDetails/update/:id (admin) — full replace.
func UpdateOrderDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order detail ID"})
			return
		}

		var detail models.OrderDetail
		if err := db.First(&detail, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order detail not found"})
			return
		}

		var req OrderDetailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := db.First(&models.Order{}, req.OrderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		if err := db.First(&models.Product{}, req.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		detail.OrderID = req.OrderID
		detail.ProductID = req.ProductID
		detail.Quantity = req.Quantity
		detail.Price = req.Price

		if err := db.Save(&detail).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order detail"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order detail updated successfully", "orderDetail": detail})
	}
}

// DELETE /api/orderDetails/delete/:id (admin)
func DeleteOrderDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order detail ID"})
			return
		}

		var detail models.OrderDetail
		if err := db.First(&detail, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order detail not found"})
			return
		}

		if err := db.Delete(&detail).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order detail"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order detail deleted successfully"})
	}
}
