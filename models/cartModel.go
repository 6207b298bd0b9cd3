package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID           int            `json:"cartId"`
	ProductID        string         `json:"productId" binding:"required"`
	Name             string         `json:"name"`
	Price            float64        `json:"price"`
	Image            string         `json:"image"`
	Quantity         int            `json:"quantity"`
	SelectedVariants datatypes.JSON `json:"selectedVariants,omitempty"`
}

// Cart is keyed by a browser session id so it survives page reloads.
type Cart struct {
	gorm.Model
	SessionID string     `json:"sessionId" gorm:"uniqueIndex;size:64"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// variantKey canonicalizes a variant selection for line identity.
// MySQL rewrites stored JSON documents (spacing, key order), so the
// raw text of a loaded selection differs from a freshly marshaled
// one; re-marshaling the decoded map yields a stable key for both.
// Absent selections (nil, "null", "{}") all map to the empty key.
func variantKey(variants datatypes.JSON) string {
	var selection map[string]string
	if err := json.Unmarshal(variants, &selection); err != nil {
		s := string(variants)
		if s == "" || s == "null" {
			return ""
		}
		return s
	}
	if len(selection) == 0 {
		return ""
	}
	canonical, _ := json.Marshal(selection)
	return string(canonical)
}

func (item CartItem) matches(productID string, variants datatypes.JSON) bool {
	return item.ProductID == productID && variantKey(item.SelectedVariants) == variantKey(variants)
}

// AddItem accumulates quantity into an existing line for the same
// product and variant selection, otherwise appends a new line.
// Quantities below 1 are clamped to 1.
func (c *Cart) AddItem(item CartItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].matches(item.ProductID, item.SelectedVariants) {
			c.Items[i].Quantity += quantity
			return
		}
	}

	item.CartID = int(c.ID)
	item.Quantity = quantity
	c.Items = append(c.Items, item)
}

// UpdateQuantity sets a line's quantity. A quantity below 1 removes
// the line, so zero-quantity lines never persist.
func (c *Cart) UpdateQuantity(productID string, variants datatypes.JSON, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID, variants)
		return
	}

	for i := range c.Items {
		if c.Items[i].matches(productID, variants) {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes a line; removing an absent line is a no-op.
// With an empty variant selection every line for the product goes.
func (c *Cart) RemoveItem(productID string, variants datatypes.JSON) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID == productID {
			if variantKey(variants) == "" || item.matches(productID, variants) {
				continue
			}
		}
		kept = append(kept, item)
	}
	c.Items = kept
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Total is derived from the lines on every call and never stored.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
