package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func watch() CartItem {
	return CartItem{ProductID: "1", Name: "Running Watch", Price: 12.99, Image: "/watch.jpg"}
}

func insoles() CartItem {
	return CartItem{ProductID: "2", Name: "Performance Insoles", Price: 39.50, Image: "/insoles.jpg"}
}

func TestAddItem_AppendsNewLine(t *testing.T) {
	cart := &Cart{}

	cart.AddItem(watch(), 2)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 25.98, cart.Total())
	assert.Equal(t, 2, cart.ItemCount())
}

func TestAddItem_AccumulatesExistingLine(t *testing.T) {
	cart := &Cart{}

	cart.AddItem(watch(), 1)
	cart.AddItem(watch(), 3)

	require.Len(t, cart.Items, 1, "same product must not duplicate the line")
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestAddItem_ClampsQuantityBelowOne(t *testing.T) {
	cart := &Cart{}

	cart.AddItem(watch(), 0)
	cart.AddItem(insoles(), -3)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestAddItem_VariantSelectionSplitsLines(t *testing.T) {
	cart := &Cart{}
	black := watch()
	black.SelectedVariants = datatypes.JSON(`{"color":"black"}`)
	silver := watch()
	silver.SelectedVariants = datatypes.JSON(`{"color":"silver"}`)

	cart.AddItem(black, 1)
	cart.AddItem(silver, 1)
	cart.AddItem(black, 1)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestAddItem_TreatsEmptyVariantShapesAlike(t *testing.T) {
	cart := &Cart{}
	bare := watch()
	withNull := watch()
	withNull.SelectedVariants = datatypes.JSON("null")
	withEmpty := watch()
	withEmpty.SelectedVariants = datatypes.JSON("{}")

	cart.AddItem(bare, 1)
	cart.AddItem(withNull, 1)
	cart.AddItem(withEmpty, 1)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

// MySQL's JSON column type reformats stored documents, so a loaded
// line carries spacing a freshly marshaled request never has. The
// same selection must still land on the same line.
func TestAddItem_AccumulatesAcrossStoredVariantFormatting(t *testing.T) {
	cart := &Cart{}
	stored := watch()
	stored.SelectedVariants = datatypes.JSON(`{"color": "black"}`)
	stored.Quantity = 1
	cart.Items = append(cart.Items, stored)

	fresh := watch()
	fresh.SelectedVariants = datatypes.JSON(`{"color":"black"}`)
	cart.AddItem(fresh, 2)

	require.Len(t, cart.Items, 1, "reformatted selection must not duplicate the line")
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestUpdateQuantity_MatchesReorderedVariantKeys(t *testing.T) {
	cart := &Cart{}
	stored := watch()
	stored.SelectedVariants = datatypes.JSON(`{"size": "42", "color": "black"}`)
	stored.Quantity = 1
	cart.Items = append(cart.Items, stored)

	cart.UpdateQuantity("1", datatypes.JSON(`{"color":"black","size":"42"}`), 4)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestRemoveItem_MatchesStoredVariantFormatting(t *testing.T) {
	cart := &Cart{}
	stored := watch()
	stored.SelectedVariants = datatypes.JSON(`{"color": "black"}`)
	stored.Quantity = 1
	cart.Items = append(cart.Items, stored)

	cart.RemoveItem("1", datatypes.JSON(`{"color":"black"}`))

	assert.Empty(t, cart.Items)
}

func TestUpdateQuantity_SetsQuantity(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(watch(), 2)

	cart.UpdateQuantity("1", nil, 5)

	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.ItemCount())
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(watch(), 2)
	cart.AddItem(insoles(), 1)

	cart.UpdateQuantity("1", nil, 0)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "2", cart.Items[0].ProductID)
}

func TestUpdateQuantity_ZeroEquivalentToRemove(t *testing.T) {
	updated := &Cart{}
	removed := &Cart{}
	for _, cart := range []*Cart{updated, removed} {
		cart.AddItem(watch(), 2)
		cart.AddItem(insoles(), 1)
	}

	updated.UpdateQuantity("1", nil, 0)
	removed.RemoveItem("1", nil)

	assert.Equal(t, removed.Items, updated.Items)
	assert.Equal(t, removed.Total(), updated.Total())
}

func TestUpdateQuantity_AbsentLineIsNoOp(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(watch(), 2)

	cart.UpdateQuantity("999", nil, 5)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestRemoveItem_IsIdempotent(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(watch(), 2)

	cart.RemoveItem("1", nil)
	cart.RemoveItem("1", nil)

	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total())
}

func TestRemoveItem_VariantSelectionTargetsOneLine(t *testing.T) {
	cart := &Cart{}
	black := watch()
	black.SelectedVariants = datatypes.JSON(`{"color":"black"}`)
	silver := watch()
	silver.SelectedVariants = datatypes.JSON(`{"color":"silver"}`)
	cart.AddItem(black, 1)
	cart.AddItem(silver, 1)

	cart.RemoveItem("1", datatypes.JSON(`{"color":"black"}`))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, datatypes.JSON(`{"color":"silver"}`), cart.Items[0].SelectedVariants)
}

func TestClear_EmptiesCart(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(watch(), 2)
	cart.AddItem(insoles(), 1)

	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.ItemCount())
}

// Totals must stay consistent with the line list across any mutation
// sequence, and no persisted line may drop below quantity 1.
func TestMutationSequence_TotalsStayConsistent(t *testing.T) {
	cart := &Cart{}

	cart.AddItem(watch(), 3)
	cart.AddItem(insoles(), -1)
	cart.UpdateQuantity("2", nil, 4)
	cart.AddItem(watch(), 1)
	cart.RemoveItem("999", nil)
	cart.UpdateQuantity("1", nil, 0)
	cart.AddItem(insoles(), 2)

	var wantTotal float64
	var wantCount int
	for _, item := range cart.Items {
		require.GreaterOrEqual(t, item.Quantity, 1)
		wantTotal += item.Price * float64(item.Quantity)
		wantCount += item.Quantity
	}
	assert.Equal(t, wantTotal, cart.Total())
	assert.Equal(t, wantCount, cart.ItemCount())
	assert.Equal(t, 6, cart.ItemCount())
	assert.InDelta(t, 6*39.50, cart.Total(), 1e-9)
}
