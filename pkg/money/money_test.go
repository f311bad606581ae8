package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotals(t *testing.T) {
	tests := []struct {
		name      string
		lines     []Line
		wantTotal float64
		wantCount int
	}{
		{"empty", nil, 0, 0},
		{"default quantity", []Line{{Price: 80}, {Price: 120}}, 200, 2},
		{"with quantity", []Line{{Price: 80, Quantity: Qty(3)}, {Price: 20}}, 260, 4},
		{"fractional prices", []Line{{Price: 0.1, Quantity: Qty(3)}, {Price: 0.2}}, 0.5, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, count := Totals(tt.lines)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestSumAndEqual(t *testing.T) {
	assert.Equal(t, 0.3, Sum(0.1, 0.2))
	assert.True(t, Equal(0.30000000000000004, 0.3))
	assert.False(t, Equal(450, 550))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "80", Format(80))
	assert.Equal(t, "100", Format(100))
	assert.Equal(t, "80.5", Format(80.5))
	assert.Equal(t, "0.33", Format(1.0/3))
}
