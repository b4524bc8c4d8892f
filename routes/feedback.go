package routes

import (
	"github.com/gin-gonic/gin"
	feedbackController "github.com/zahraaAed/Douluxme-Backend/controllers/feedback"
	"github.com/zahraaAed/Douluxme-Backend/middleware"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

func SetupFeedbackRoutes(api *gin.RouterGroup, db *gorm.DB) {
	feedbacks := api.Group("/feedbacks")
	{
		feedbacks.GET("/get", feedbackController.GetFeedbacks(db))
		feedbacks.GET("/get/:id", feedbackController.GetFeedbackByID(db))
		feedbacks.GET("/user/:userId", feedbackController.GetFeedbacksByUserID(db))
		feedbacks.GET("/product/:productId", feedbackController.GetFeedbacksByProductID(db))

		auth := feedbacks.Group("", middleware.Authenticate)
		{
			auth.POST("/create", middleware.Authorize(models.RoleCustomer), feedbackController.CreateFeedback(db))
			auth.PATCH("/update/:id", middleware.Authorize(models.RoleCustomer, models.RoleAdmin), feedbackController.UpdateFeedback(db))
			auth.DELETE("/delete/:id", middleware.Authorize(models.RoleCustomer, models.RoleAdmin), feedbackController.DeleteFeedback(db))
		}
	}
}
