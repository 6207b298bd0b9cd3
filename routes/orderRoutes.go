package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trackpro/trackpro-api/controllers"
	"github.com/trackpro/trackpro-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	server.GET("/order", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetOrders)
	server.GET("/order/:orderId", controllers.GetOrderById)
	server.GET("/payment-intent/:paymentIntentId/order", controllers.GetOrderByPaymentIntent)
	server.PATCH("/order/:orderId", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateOrderStatus)
	server.GET("/order-stats/undelivered", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetUndeliveredOrders)
}
