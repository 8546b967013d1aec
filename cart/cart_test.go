package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func fixedEntry() CatalogEntry {
	return CatalogEntry{
		ID:       "kra-pin-registration",
		Label:    "KRA PIN Registration",
		Price:    1500,
		Category: "kra",
	}
}

func variableEntry() CatalogEntry {
	return CatalogEntry{
		ID:               "kra-returns-company",
		Label:            "Company Tax Returns Filing",
		Price:            10000,
		HasVariablePrice: true,
		MinPrice:         ptr(10000),
		Category:         "kra",
	}
}

func TestToggleAddsWithQuantityOne(t *testing.T) {
	c := &Cart{}

	selected := c.Toggle(fixedEntry())

	require.True(t, selected)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 1500.0, c.Items[0].Price)
	assert.Nil(t, c.Items[0].CustomPrice)
}

func TestToggleInitializesVariablePriceAtMinimum(t *testing.T) {
	c := &Cart{}

	c.Toggle(variableEntry())

	require.Len(t, c.Items, 1)
	require.NotNil(t, c.Items[0].CustomPrice)
	assert.Equal(t, 10000.0, *c.Items[0].CustomPrice)
}

func TestToggleVariablePriceWithoutMinimumUsesBasePrice(t *testing.T) {
	c := &Cart{}
	entry := variableEntry()
	entry.MinPrice = nil

	c.Toggle(entry)

	require.NotNil(t, c.Items[0].CustomPrice)
	assert.Equal(t, entry.Price, *c.Items[0].CustomPrice)
}

func TestTogglePairLeavesCartUnchanged(t *testing.T) {
	c := &Cart{}
	c.Toggle(fixedEntry())
	before := len(c.Items)

	c.Toggle(variableEntry())
	c.Toggle(variableEntry())

	assert.Len(t, c.Items, before)
	assert.True(t, c.Contains("kra-pin-registration"))
	assert.False(t, c.Contains("kra-returns-company"))
}

func TestTogglePairDiscardsEditsBetweenCalls(t *testing.T) {
	c := &Cart{}
	entry := variableEntry()

	c.Toggle(entry)
	c.UpdateCustomPrice(entry.ID, 25000)
	c.UpdateQuantity(entry.ID, 4)

	// Toggle off then back on: the entry is recreated from the catalog
	c.Toggle(entry)
	c.Toggle(entry)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
	require.NotNil(t, c.Items[0].CustomPrice)
	assert.Equal(t, 10000.0, *c.Items[0].CustomPrice)
}

func TestToggleKeepsSingleEntryPerID(t *testing.T) {
	c := &Cart{}
	c.Toggle(fixedEntry())
	c.Toggle(fixedEntry())
	c.Toggle(fixedEntry())

	assert.Len(t, c.Items, 1)
}

func TestUpdateQuantityBelowOneIsNoOp(t *testing.T) {
	c := &Cart{}
	c.Toggle(fixedEntry())
	c.UpdateQuantity("kra-pin-registration", 3)

	c.UpdateQuantity("kra-pin-registration", 0)
	assert.Equal(t, 3, c.Items[0].Quantity)

	c.UpdateQuantity("kra-pin-registration", -5)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	c := &Cart{}
	c.Toggle(fixedEntry())

	c.UpdateQuantity("nope", 5)

	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestUpdateCustomPriceClampsToMinimum(t *testing.T) {
	tests := []struct {
		name      string
		requested float64
		want      float64
	}{
		{"above minimum", 12000, 12000},
		{"below minimum", 2000, 10000},
		{"at minimum", 10000, 10000},
		{"negative", -500, 10000},
		{"no upper bound", 1000000, 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Cart{}
			c.Toggle(variableEntry())

			c.UpdateCustomPrice("kra-returns-company", tt.requested)

			require.NotNil(t, c.Items[0].CustomPrice)
			assert.Equal(t, tt.want, *c.Items[0].CustomPrice)
		})
	}
}

func TestUpdateCustomPriceWithoutMinimumClampsToZero(t *testing.T) {
	c := &Cart{}
	entry := variableEntry()
	entry.MinPrice = nil
	c.Toggle(entry)

	c.UpdateCustomPrice(entry.ID, -100)

	require.NotNil(t, c.Items[0].CustomPrice)
	assert.Equal(t, 0.0, *c.Items[0].CustomPrice)
}

func TestUpdateCustomPriceIgnoresFixedPriceItems(t *testing.T) {
	c := &Cart{}
	c.Toggle(fixedEntry())

	c.UpdateCustomPrice("kra-pin-registration", 1)

	assert.Nil(t, c.Items[0].CustomPrice)
	assert.Equal(t, 1500.0, c.Items[0].UnitPrice())
}

func TestTotalEmptyCart(t *testing.T) {
	c := &Cart{}
	assert.Equal(t, 0.0, c.Total())
}

func TestTotalFixedPriceItem(t *testing.T) {
	c := &Cart{}
	c.Toggle(fixedEntry())
	c.UpdateQuantity("kra-pin-registration", 2)

	assert.Equal(t, 3000.0, c.Total())
}

func TestTotalClampedVariablePriceItem(t *testing.T) {
	c := &Cart{}
	entry := CatalogEntry{
		ID:               "data-custom-analysis",
		Label:            "Custom Data Analysis",
		Price:            3000,
		HasVariablePrice: true,
		MinPrice:         ptr(3000),
		Category:         "data",
	}
	c.Toggle(entry)
	c.UpdateCustomPrice(entry.ID, 2000) // clamped to 3000
	c.UpdateQuantity(entry.ID, 2)

	assert.Equal(t, 6000.0, c.Total())
}

func TestRemove(t *testing.T) {
	c := &Cart{}
	c.Toggle(fixedEntry())
	c.Toggle(variableEntry())

	assert.True(t, c.Remove("kra-pin-registration"))
	assert.False(t, c.Remove("kra-pin-registration"))
	require.Len(t, c.Items, 1)
	assert.Equal(t, "kra-returns-company", c.Items[0].ID)
}

func TestClear(t *testing.T) {
	c := &Cart{}
	c.Toggle(fixedEntry())
	c.Toggle(variableEntry())

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.Total())
}
