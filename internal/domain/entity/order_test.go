package entity

import (
	"testing"

	"github.com/sangkips/laundry-admin/pkg/money"
	"github.com/stretchr/testify/assert"
)

func TestOrder_RecalculateIgnoresQuantity(t *testing.T) {
	order := Order{
		TotalAmount:  80,
		TotalClothes: 1,
		Items: []Item{
			{ItemID: "ITEM-2409-001", Price: 80, Quantity: money.Qty(3)},
			{ItemID: "ITEM-2409-002", Price: 120},
		},
	}
	assert.False(t, order.TotalsConsistent())
	assert.Equal(t, 200.0, order.ComputedTotal())

	order.Recalculate()

	assert.Equal(t, 200.0, order.TotalAmount)
	assert.Equal(t, 2, order.TotalClothes)
	assert.True(t, order.TotalsConsistent())
}

func TestOrder_PlacedAt(t *testing.T) {
	order := Order{OrderDate: "2024-09-12 10:30"}
	at, err := order.PlacedAt()
	assert.NoError(t, err)
	assert.Equal(t, 12, at.Day())
	assert.Equal(t, 10, at.Hour())
}
