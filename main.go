package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/trackpro/trackpro-api/cache"
	"github.com/trackpro/trackpro-api/controllers"
	"github.com/trackpro/trackpro-api/initializers"
	"github.com/trackpro/trackpro-api/payments"
	"github.com/trackpro/trackpro-api/routes"
	"github.com/trackpro/trackpro-api/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.ConnectToRedis()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", os.Getenv("FRONTEND_URL")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	controllers.Checkout = services.NewCheckoutService(
		payments.NewClient(),
		services.NewGormOrderStore(initializers.DB),
	)
	if initializers.RedisClient != nil {
		controllers.CartCache = cache.NewCartCache(initializers.RedisClient)
	}

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ProductRoutes(server)
	routes.CartRoutes(server)
	routes.CheckoutRoutes(server)
	routes.OrderRoutes(server)
	server.Run()
}
