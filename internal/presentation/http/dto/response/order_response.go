package response

import "github.com/sangkips/laundry-admin/internal/domain/entity"

// OrderDetailResponse adds the derived totals check to an order
type OrderDetailResponse struct {
	entity.Order
	ComputedTotal    float64  `json:"computedTotal"`
	TotalsConsistent bool     `json:"totalsConsistent"`
	NextStatuses     []string `json:"nextStatuses"`
}

// NewOrderDetailResponse builds the order detail payload
func NewOrderDetailResponse(o *entity.Order) *OrderDetailResponse {
	next := []string{}
	for _, s := range o.Status.Next() {
		next = append(next, s.String())
	}
	return &OrderDetailResponse{
		Order:            *o,
		ComputedTotal:    o.ComputedTotal(),
		TotalsConsistent: o.TotalsConsistent(),
		NextStatuses:     next,
	}
}

// StatusOption describes one order status and where it can move next
type StatusOption struct {
	Status string   `json:"status"`
	Rank   int      `json:"rank"`
	Next   []string `json:"next"`
}
