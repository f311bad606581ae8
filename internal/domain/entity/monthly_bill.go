package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/sangkips/laundry-admin/internal/domain/enum"
	"github.com/sangkips/laundry-admin/pkg/money"
)

const (
	// BillDateLayout is the format of CreatedAt and DueDate
	BillDateLayout = "2006-01-02"
	monthKeyLayout = "2006-01"
	monthLabel     = "January 2006"
)

// BillLine is one garment on a bill
type BillLine struct {
	ItemID      string  `json:"itemId"`
	OrderID     string  `json:"orderId"`
	ItemName    string  `json:"itemName,omitempty"`
	Category    string  `json:"category"`
	SubCategory string  `json:"subCategory"`
	Price       float64 `json:"price"`
	Quantity    *int    `json:"quantity,omitempty"`
}

// MonthlyBill aggregates a customer's items for one month into one invoice.
// TotalAmount and Items are derived from ItemDetails.
type MonthlyBill struct {
	BillID       string          `json:"billId"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Mobile       string          `json:"mobile"`
	CompanyName  string          `json:"companyName,omitempty"`
	Email        string          `json:"email,omitempty"`
	Address      string          `json:"address,omitempty"`
	Month        string          `json:"month"`
	Status       enum.BillStatus `json:"status"`
	TotalAmount  float64         `json:"totalAmount"`
	Items        int             `json:"items"`
	Orders       []string        `json:"orders"`
	ItemDetails  []BillLine      `json:"itemDetails"`
	CreatedAt    string          `json:"createdAt"`
	DueDate      string          `json:"dueDate,omitempty"`
}

func (b *MonthlyBill) lines() []money.Line {
	lines := make([]money.Line, len(b.ItemDetails))
	for i, l := range b.ItemDetails {
		lines[i] = money.Line{Price: l.Price, Quantity: l.Quantity}
	}
	return lines
}

// Recalculate derives TotalAmount and Items from ItemDetails
func (b *MonthlyBill) Recalculate() {
	b.TotalAmount, b.Items = money.Totals(b.lines())
}

// TotalsConsistent reports whether the stored totals match ItemDetails
func (b *MonthlyBill) TotalsConsistent() bool {
	total, count := money.Totals(b.lines())
	return money.Equal(b.TotalAmount, total) && b.Items == count
}

// MonthKey normalises Month to YYYY-MM, accepting both "2025-06" and
// "June 2025". Unparseable months are returned unchanged.
func (b *MonthlyBill) MonthKey() string {
	return NormalizeMonth(b.Month)
}

// References reports whether the bill covers orderID
func (b *MonthlyBill) References(orderID string) bool {
	for _, id := range b.Orders {
		if id == orderID {
			return true
		}
	}
	for _, l := range b.ItemDetails {
		if l.OrderID == orderID {
			return true
		}
	}
	return false
}

// NormalizeMonth converts "June 2025" or "2025-06" to "2025-06"
func NormalizeMonth(month string) string {
	month = strings.TrimSpace(month)
	if t, err := time.Parse(monthKeyLayout, month); err == nil {
		return t.Format(monthKeyLayout)
	}
	if t, err := time.Parse(monthLabel, month); err == nil {
		return t.Format(monthKeyLayout)
	}
	return month
}

// ParseMonth parses a YYYY-MM or "Month YYYY" value
func ParseMonth(month string) (time.Time, error) {
	key := NormalizeMonth(month)
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q", month)
	}
	return t, nil
}

// MonthLabel renders a month as "November 2023"
func MonthLabel(t time.Time) string {
	return t.Format(monthLabel)
}
