package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trackpro/trackpro-api/controllers"
)

func CartRoutes(server *gin.Engine) {
	server.POST("/cart", controllers.CreateCart)
	server.GET("/cart/:sessionId", controllers.GetCart)
	server.POST("/cart/:sessionId/items", controllers.AddCartItem)
	server.PATCH("/cart/:sessionId/items/:productId", controllers.UpdateCartItem)
	server.DELETE("/cart/:sessionId/items/:productId", controllers.RemoveCartItem)
	server.DELETE("/cart/:sessionId", controllers.ClearCart)
}
