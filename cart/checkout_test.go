package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalizeEmptyCart(t *testing.T) {
	c := &Cart{}

	pending, err := Finalize(c, "kra")

	require.ErrorIs(t, err, ErrEmptySelection)
	assert.Nil(t, pending)
}

func TestFinalizeFlattensAndFreezesTotals(t *testing.T) {
	c := &Cart{}
	c.Toggle(fixedEntry())
	c.UpdateQuantity("kra-pin-registration", 2)
	c.Toggle(variableEntry())
	c.UpdateCustomPrice("kra-returns-company", 15000)

	pending, err := Finalize(c, "kra")
	require.NoError(t, err)

	require.Len(t, pending.Items, 2)
	assert.Equal(t, "kra", pending.Category)
	assert.Equal(t, 2*1500.0+15000.0, pending.Total)
	assert.False(t, pending.CreatedAt.IsZero())

	first := pending.Items[0]
	assert.Equal(t, "kra", first.Type)
	assert.Equal(t, "kra-pin-registration", first.ServiceID)
	assert.Equal(t, "KRA PIN Registration", first.Name)
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, 1500.0, first.UnitPrice)
	assert.Equal(t, 3000.0, first.TotalPrice)
	assert.False(t, first.Details.HasVariablePrice)

	second := pending.Items[1]
	assert.Equal(t, 15000.0, second.UnitPrice)
	assert.True(t, second.Details.HasVariablePrice)
	require.NotNil(t, second.Details.MinPrice)
	assert.Equal(t, 10000.0, *second.Details.MinPrice)
}

func TestPriorityApplyFees(t *testing.T) {
	tests := []struct {
		priority Priority
		total    float64
		want     float64
	}{
		{PriorityNormal, 10000, 10000},
		{PriorityUrgent, 10000, 10000},
		{PriorityExpress, 10000, 13000},
		{PriorityExpress, 0, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.priority.ApplyFees(tt.total), 1e-9)
		})
	}
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, PriorityNormal.Valid())
	assert.True(t, PriorityUrgent.Valid())
	assert.True(t, PriorityExpress.Valid())
	assert.False(t, Priority("asap").Valid())
}
