package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/zahraaAed/Douluxme-Backend/controllers/user"
	"github.com/zahraaAed/Douluxme-Backend/middleware"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	users := api.Group("/users")
	{
		users.POST("/register", middleware.RateLimiter(), userControllers.Register(db))
		users.POST("/login", middleware.RateLimiter(), userControllers.Login(db))
		users.POST("/logout", userControllers.Logout())

		users.GET("/me", middleware.Authenticate, userControllers.Me(db))

		admin := users.Group("", middleware.Authenticate, middleware.Authorize(models.RoleAdmin))
		{
			admin.GET("/get", userControllers.GetAllUsers(db))
			admin.PATCH("/update/:id", userControllers.UpdateUser(db))
			admin.DELETE("/delete/:id", userControllers.DeleteUser(db))
		}
	}
}
