package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trackpro/trackpro-api/controllers"
	"github.com/trackpro/trackpro-api/middlewares"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/:id", controllers.GetProduct)
	server.POST("/product", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateProduct)
	server.POST("/product-variants", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateProductVariant)
	server.POST("/product-images", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UploadProductImages)
}
