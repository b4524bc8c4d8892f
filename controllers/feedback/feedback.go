package feedbackController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zahraaAed/Douluxme-Backend/middleware"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

type FeedbackRequest struct {
	Comment   string `json:"comment" binding:"required"`
	ProductID uint   `json:"ProductId" binding:"required"`
}

type UpdateFeedbackRequest struct {
	Comment *string `json:"comment"`
}

func feedbackPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Product", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name")
		}).
		Preload("User", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name")
		})
}

// CreateFeedback stores one comment per user per product. The pair check runs
// before the insert; the composite unique index catches the race.
//
// POST /api/feedbacks/create (customer)
func CreateFeedback(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var req FeedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := db.First(&models.Product{}, req.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		var count int64
		if err := db.Model(&models.Feedback{}).
			Where("product_id = ? AND user_id = ?", req.ProductID, userID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing feedback"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User has already submitted feedback for this product"})
			return
		}

		feedback := models.Feedback{
			Comment:   req.Comment,
			ProductID: req.ProductID,
			UserID:    userID,
		}
		if err := db.Create(&feedback).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User has already submitted feedback for this product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Feedback created successfully", "feedbackId": feedback.ID})
	}
}

// GET /api/feedbacks/get
func GetFeedbacks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var feedbacks []models.Feedback
		if err := feedbackPreloads(db).Find(&feedbacks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedbacks"})
			return
		}
		c.JSON(http.StatusOK, feedbacks)
	}
}

// GET /api/feedbacks/get/:id
func GetFeedbackByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid feedback ID"})
			return
		}

		var feedback models.Feedback
		if err := feedbackPreloads(db).First(&feedback, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Feedback not found"})
			return
		}
		c.JSON(http.StatusOK, feedback)
	}
}

// GET /api/feedbacks/user/:userId
func GetFeedbacksByUserID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
			return
		}

		var feedbacks []models.Feedback
		if err := feedbackPreloads(db).Where("user_id = ?", userID).Find(&feedbacks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedbacks"})
			return
		}
		c.JSON(http.StatusOK, feedbacks)
	}
}

// GET /api/feedbacks/product/:productId
func GetFeedbacksByProductID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var feedbacks []models.Feedback
		if err := feedbackPreloads(db).Where("product_id = ?", productID).Find(&feedbacks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedbacks"})
			return
		}
		c.JSON(http.StatusOK, feedbacks)
	}
}

// PATCH /api/feedbacks/update/:id
func UpdateFeedback(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid feedback ID"})
			return
		}

		var feedback models.Feedback
		if err := db.First(&feedback, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Feedback not found"})
			return
		}

		var req UpdateFeedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if req.Comment != nil {
			feedback.Comment = *req.Comment
		}

		if err := db.Save(&feedback).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update feedback"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Feedback updated successfully", "feedback": feedback})
	}
}

// DELETE /api/feedbacks/delete/:id
func DeleteFeedback(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid feedback ID"})
			return
		}

		var feedback models.Feedback
		if err := db.First(&feedback, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Feedback not found"})
			return
		}

		if err := db.Delete(&feedback).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feedback"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted successfully"})
	}
}
