package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/trackpro/trackpro-api/models"
	"github.com/trackpro/trackpro-api/services"
	"github.com/trackpro/trackpro-api/utils"
)

// Checkout is wired in main with the Stripe client and the order store.
var Checkout *services.CheckoutService

func checkoutErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		return "Invalid amount"
	case errors.Is(err, services.ErrMissingOrderInfo):
		return "Missing required order information"
	case errors.Is(err, services.ErrMissingPaymentIntentID):
		return "Payment Intent ID is required"
	case errors.Is(err, services.ErrPaymentNotSucceeded):
		return "Payment not successful"
	case errors.Is(err, services.ErrMissingOrderData):
		return "Missing order information in payment intent"
	default:
		return ""
	}
}

func CreatePaymentIntent(ctx *gin.Context) {
	var input services.CreatePaymentIntentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	output, err := Checkout.CreatePaymentIntent(ctx.Request.Context(), input)
	if err != nil {
		if services.IsCheckoutValidationError(err) {
			sendErrorResponse(ctx, http.StatusBadRequest, checkoutErrorMessage(err))
			return
		}
		log.Println("Error creating payment intent:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.JSON(http.StatusOK, output)
}

func ConfirmPayment(ctx *gin.Context) {
	var input struct {
		PaymentIntentID string `json:"paymentIntentId"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := Checkout.ConfirmPayment(ctx.Request.Context(), input.PaymentIntentID)
	if err != nil {
		if services.IsCheckoutValidationError(err) {
			sendErrorResponse(ctx, http.StatusBadRequest, checkoutErrorMessage(err))
			return
		}
		log.Println("Error confirming payment and creating order:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to process order")
		return
	}

	sendOrderConfirmationEmail(order)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"orderId": order.ID,
		"order": gin.H{
			"id":            order.ID,
			"total":         order.Total,
			"status":        order.Status,
			"customerEmail": order.CustomerEmail,
			"createdAt":     order.CreatedAt,
		},
	})
}

// Best effort; a mail failure never fails the checkout.
func sendOrderConfirmationEmail(order *models.Order) {
	emailData := utils.OrderEmailData{
		CustomerEmail: order.CustomerEmail,
		OrderID:       order.ID,
		Total:         fmt.Sprintf("%.2f", order.Total),
		Message:       "Your payment was received and your order is being prepared.",
		LogoURL:       "https://www.trackpro.store/images/logo.jpg",
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	if err := utils.SendOrderEmail(order.CustomerEmail, "Your TRACKPRO Order Confirmation", emailData, templatePath); err != nil {
		log.Println("Error sending order confirmation email:", err)
	} else {
		log.Println("Order confirmation email sent successfully to:", order.CustomerEmail)
	}
}
