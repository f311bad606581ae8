package entity

import (
	"time"

	"github.com/sangkips/laundry-admin/internal/domain/enum"
	"github.com/sangkips/laundry-admin/pkg/money"
)

// OrderDateLayout is the format of Order.OrderDate
const OrderDateLayout = "2006-01-02 15:04"

// Item is one garment. Its ID is minted by the mobile apps and never changes.
type Item struct {
	ItemID      string  `json:"itemId"`
	Category    string  `json:"category"`
	SubCategory string  `json:"subCategory"`
	Notes       string  `json:"notes,omitempty"`
	Price       float64 `json:"price"`
	Quantity    *int    `json:"quantity,omitempty"`
}

// DeliveryAssignment is the delivery person snapshot embedded in an order
type DeliveryAssignment struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// Order represents a laundry pickup. Items are immutable once created.
type Order struct {
	OrderID           string              `json:"orderId"`
	CustomerName      string              `json:"customerName"`
	CustomerID        string              `json:"customerId"`
	OrderSource       enum.OrderSource    `json:"orderSource"`
	OrderDate         string              `json:"orderDate"`
	Status            enum.OrderStatus    `json:"status"`
	PaymentType       string              `json:"paymentType"`
	TotalClothes      int                 `json:"totalClothes"`
	PaymentStatus     string              `json:"paymentStatus"`
	TotalAmount       float64             `json:"totalAmount"`
	PickupAddress     string              `json:"pickupAddress"`
	DeliveryAddress   string              `json:"deliveryAddress"`
	PreferredDelivery string              `json:"preferredDelivery"`
	DeliveryPerson    *DeliveryAssignment `json:"deliveryPerson"`
	Items             []Item              `json:"items"`
}

// lines counts every item once. Item.Quantity is carried through from the
// apps but does not scale order totals.
func (o *Order) lines() []money.Line {
	lines := make([]money.Line, len(o.Items))
	for i, it := range o.Items {
		lines[i] = money.Line{Price: it.Price}
	}
	return lines
}

// ComputedTotal is the sum of the item prices
func (o *Order) ComputedTotal() float64 {
	total, _ := money.Totals(o.lines())
	return total
}

// Recalculate derives TotalAmount and TotalClothes from Items
func (o *Order) Recalculate() {
	o.TotalAmount, o.TotalClothes = money.Totals(o.lines())
}

// TotalsConsistent reports whether TotalAmount matches the items
func (o *Order) TotalsConsistent() bool {
	return money.Equal(o.TotalAmount, o.ComputedTotal())
}

// PlacedAt parses OrderDate
func (o *Order) PlacedAt() (time.Time, error) {
	return time.Parse(OrderDateLayout, o.OrderDate)
}
