package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gorm.io/datatypes"

	"github.com/trackpro/trackpro-api/models"
	"github.com/trackpro/trackpro-api/payments"
)

type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, params payments.CreateIntentParams) (*payments.PaymentIntent, error)
	RetrievePaymentIntent(ctx context.Context, id string) (*payments.PaymentIntent, error)
}

type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	FindOrderByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Order, error)
}

type CheckoutService struct {
	provider PaymentProvider
	orders   OrderStore
}

func NewCheckoutService(provider PaymentProvider, orders OrderStore) *CheckoutService {
	return &CheckoutService{provider: provider, orders: orders}
}

// CheckoutCartItem is the cart snapshot format embedded in the payment
// intent metadata and read back at confirmation.
type CheckoutCartItem struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Price            float64           `json:"price"`
	Image            string            `json:"image"`
	Quantity         int               `json:"quantity"`
	SelectedVariants map[string]string `json:"selectedVariants,omitempty"`
}

type CreatePaymentIntentInput struct {
	Amount        float64            `json:"amount"`
	Currency      string             `json:"currency"`
	CustomerEmail string             `json:"customerEmail"`
	CartItems     []CheckoutCartItem `json:"cartItems"`
}

type CreatePaymentIntentOutput struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}

// CreatePaymentIntent validates the request and asks Stripe for an
// intent. The customer email and serialized cart go into the intent
// metadata; no pending order row is written at this point.
func (s *CheckoutService) CreatePaymentIntent(ctx context.Context, input CreatePaymentIntentInput) (*CreatePaymentIntentOutput, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if input.CustomerEmail == "" || !strings.Contains(input.CustomerEmail, "@") || len(input.CartItems) == 0 {
		return nil, ErrMissingOrderInfo
	}

	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	snapshot, err := json.Marshal(input.CartItems)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize cart items: %w", err)
	}

	intent, err := s.provider.CreatePaymentIntent(ctx, payments.CreateIntentParams{
		Amount:   toMinorUnits(input.Amount),
		Currency: currency,
		Metadata: map[string]string{
			"customerEmail": input.CustomerEmail,
			"cartItems":     string(snapshot),
		},
	})
	if err != nil {
		return nil, err
	}

	return &CreatePaymentIntentOutput{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// ConfirmPayment re-verifies the intent with Stripe and persists the
// order. The provider's retrieved status is the only authority for
// whether the payment succeeded; a client-reported success flag is
// never trusted. Confirming an intent that already produced an order
// returns that order instead of creating a second one.
func (s *CheckoutService) ConfirmPayment(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	if paymentIntentID == "" {
		return nil, ErrMissingPaymentIntentID
	}

	existing, err := s.orders.FindOrderByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	intent, err := s.provider.RetrievePaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}

	if intent.Status != payments.StatusSucceeded {
		return nil, ErrPaymentNotSucceeded
	}

	customerEmail := intent.Metadata["customerEmail"]
	cartItemsJSON := intent.Metadata["cartItems"]
	if customerEmail == "" || cartItemsJSON == "" {
		return nil, ErrMissingOrderData
	}

	var items []CheckoutCartItem
	if err := json.Unmarshal([]byte(cartItemsJSON), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingOrderData, err)
	}

	address, err := json.Marshal(shippingAddressFromIntent(intent.Shipping))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize shipping address: %w", err)
	}

	order := &models.Order{
		Total:           float64(intent.Amount) / 100,
		Status:          models.OrderStatusPending,
		CustomerEmail:   customerEmail,
		ShippingAddress: datatypes.JSON(address),
		PaymentIntentID: paymentIntentID,
	}

	for _, item := range items {
		snapshot, err := json.Marshal(map[string]string{
			"name":  item.Name,
			"image": item.Image,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to serialize product snapshot: %w", err)
		}
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ProductID:       item.ID,
			Quantity:        item.Quantity,
			Price:           item.Price,
			ProductSnapshot: datatypes.JSON(snapshot),
		})
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// shippingAddressFromIntent substitutes "N/A" for absent fields and
// defaults the country to US, the way the checkout form expects.
func shippingAddressFromIntent(shipping *payments.Shipping) models.ShippingAddress {
	address := models.ShippingAddress{
		Name:       "N/A",
		Line1:      "N/A",
		City:       "N/A",
		State:      "N/A",
		PostalCode: "N/A",
		Country:    "US",
	}

	if shipping == nil {
		return address
	}

	if shipping.Name != "" {
		address.Name = shipping.Name
	}
	address.Phone = shipping.Phone

	if shipping.Address == nil {
		return address
	}
	if shipping.Address.Line1 != "" {
		address.Line1 = shipping.Address.Line1
	}
	address.Line2 = shipping.Address.Line2
	if shipping.Address.City != "" {
		address.City = shipping.Address.City
	}
	if shipping.Address.State != "" {
		address.State = shipping.Address.State
	}
	if shipping.Address.PostalCode != "" {
		address.PostalCode = shipping.Address.PostalCode
	}
	if shipping.Address.Country != "" {
		address.Country = shipping.Address.Country
	}

	return address
}
