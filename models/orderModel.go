package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

var orderStatusTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// CanTransitionOrderStatus reports whether an order may move from one
// fulfillment status to another. Delivered and cancelled are terminal.
func CanTransitionOrderStatus(from, to string) bool {
	for _, next := range orderStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	gorm.Model
	Total           float64        `json:"total"`
	Status          string         `json:"status"`
	CustomerEmail   string         `json:"customerEmail"`
	ShippingAddress datatypes.JSON `json:"shippingAddress"`
	PaymentIntentID string         `json:"paymentIntentId" gorm:"uniqueIndex;size:191"`
	OrderItems      []OrderItem    `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID         int            `json:"orderId"`
	ProductID       string         `json:"productId"`
	Quantity        int            `json:"quantity"`
	Price           float64        `json:"price"`
	ProductSnapshot datatypes.JSON `json:"productSnapshot"`
}

// ShippingAddress is what gets serialized into Order.ShippingAddress.
type ShippingAddress struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}
