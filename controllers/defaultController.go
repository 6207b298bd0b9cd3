package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the TRACKPRO API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account

PRODUCT
- GET "/product" - Get all products
- GET "/product/{id}" - Get product by ID
- POST "/product" - Create new product (admin)
- POST "/product-variants" - Add product variants (admin)
- POST "/product-images" - Upload product images (admin)

CART
- POST "/cart" - Create a session cart
- GET "/cart/{sessionId}" - Get cart with totals
- POST "/cart/{sessionId}/items" - Add an item to the cart
- PATCH "/cart/{sessionId}/items/{productId}" - Update item quantity
- DELETE "/cart/{sessionId}/items/{productId}" - Remove an item
- DELETE "/cart/{sessionId}" - Clear the cart

CHECKOUT
- POST "/checkout/create-payment-intent" - Start a payment
- POST "/checkout/confirm-payment" - Verify payment and create the order

ORDER
- GET "/order" - Retrieve all orders (admin)
- GET "/order/{orderId}" - Get order by ID
- GET "/payment-intent/{paymentIntentId}/order" - Get order by payment intent
- PATCH "/order/{orderId}" - Update order status (admin)
- GET "/order-stats/undelivered" - Count undelivered orders (admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
