package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/zahraaAed/Douluxme-Backend/config"
	orderControllers "github.com/zahraaAed/Douluxme-Backend/controllers/order"
	"github.com/zahraaAed/Douluxme-Backend/middleware"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders", middleware.Authenticate)
	{
		orders.POST("/create", middleware.Authorize(models.RoleCustomer), orderControllers.CreateOrder(db))
		orders.GET("/user/:userId", orderControllers.GetOrdersByUserID(db, config.App.LegacyOrderOwnerCheck))

		admin := orders.Group("", middleware.Authorize(models.RoleAdmin))
		{
			admin.GET("/get", orderControllers.GetOrders(db))
			admin.GET("/get/:id", orderControllers.GetOrderByID(db))
			admin.PATCH("/update/:id", orderControllers.UpdateOrder(db))
			admin.DELETE("/delete/:id", orderControllers.DeleteOrder(db))
			admin.GET("/status/:status", orderControllers.GetOrdersByStatus(db))
			admin.GET("/paymentMethod/:paymentMethod", orderControllers.GetOrdersByPaymentMethod(db))
			admin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}
	}
}

func SetupOrderDetailRoutes(api *gin.RouterGroup, db *gorm.DB) {
	details := api.Group("/orderDetails", middleware.Authenticate, middleware.Authorize(models.RoleAdmin))
	{
		details.POST("/create", orderControllers.CreateOrderDetail(db))
		details.GET("/get", orderControllers.GetOrderDetails(db))
		details.GET("/get/:id", orderControllers.GetOrderDetailByID(db))
		details.GET("/order/:orderId", orderControllers.GetOrderDetailsByOrderID(db))
		details.PATCH("/update/:id", orderControllers.UpdateOrderDetail(db))
		details.DELETE("/delete/:id", orderControllers.DeleteOrderDetail(db))
	}
}
