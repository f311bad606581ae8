// Package money holds the aggregation arithmetic shared by orders and bills.
package money

import "github.com/shopspring/decimal"

// Line is one priced entry. A nil Quantity counts as one piece.
type Line struct {
	Price    float64
	Quantity *int
}

func (l Line) qty() int {
	if l.Quantity == nil {
		return 1
	}
	return *l.Quantity
}

// Totals returns Σ price × quantity and Σ quantity over lines.
func Totals(lines []Line) (float64, int) {
	sum := decimal.Zero
	count := 0
	for _, l := range lines {
		q := l.qty()
		sum = sum.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(q))))
		count += q
	}
	return sum.InexactFloat64(), count
}

// Sum adds plain amounts without float drift.
func Sum(amounts ...float64) float64 {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(decimal.NewFromFloat(a))
	}
	return sum.InexactFloat64()
}

// Equal compares two amounts to the paisa.
func Equal(a, b float64) bool {
	return decimal.NewFromFloat(a).Round(2).Equal(decimal.NewFromFloat(b).Round(2))
}

// Qty is a helper for building optional quantities.
func Qty(n int) *int {
	return &n
}

// Format renders an amount without trailing zeros, e.g. 80 or 80.5.
func Format(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}
