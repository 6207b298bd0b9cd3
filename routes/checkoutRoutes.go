package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trackpro/trackpro-api/controllers"
)

func CheckoutRoutes(server *gin.Engine) {
	checkout := server.Group("/checkout")
	{
		checkout.POST("/create-payment-intent", controllers.CreatePaymentIntent)
		checkout.POST("/confirm-payment", controllers.ConfirmPayment)
	}
}
