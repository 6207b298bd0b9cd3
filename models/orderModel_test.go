package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrderStatus(t *testing.T) {
	allowed := [][2]string{
		{OrderStatusPending, OrderStatusProcessing},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusProcessing, OrderStatusShipped},
		{OrderStatusShipped, OrderStatusDelivered},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransitionOrderStatus(tc[0], tc[1]), "%s -> %s should be allowed", tc[0], tc[1])
	}

	denied := [][2]string{
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusPending, OrderStatusDelivered},
		{OrderStatusProcessing, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusProcessing},
		{OrderStatusDelivered, OrderStatusPending},
		{OrderStatusCancelled, OrderStatusProcessing},
		{OrderStatusPending, OrderStatusPending},
		{"", OrderStatusProcessing},
		{OrderStatusPending, "misplaced"},
	}
	for _, tc := range denied {
		assert.False(t, CanTransitionOrderStatus(tc[0], tc[1]), "%s -> %s should be rejected", tc[0], tc[1])
	}
}
