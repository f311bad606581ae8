package entity

// MainCategories is the fixed list of top-level service categories
var MainCategories = []string{
	"Men's Wear",
	"Women's Wear",
	"Kids Wear",
	"Household",
	"Steam",
	"Wash & Iron",
	"Other",
}

// CategoryTree maps a main category to its sub-category names
type CategoryTree map[string][]string

// PriceMap maps a sub-category name to its price. It is keyed by name only,
// so a name used under two main categories shares one price.
type PriceMap map[string]float64

func IsMainCategory(name string) bool {
	for _, c := range MainCategories {
		if c == name {
			return true
		}
	}
	return false
}

// Normalize returns a tree holding exactly the main categories, each with a
// non-nil list. Unknown keys are dropped.
func (t CategoryTree) Normalize() CategoryTree {
	out := make(CategoryTree, len(MainCategories))
	for _, c := range MainCategories {
		subs := t[c]
		if subs == nil {
			subs = []string{}
		}
		out[c] = append([]string{}, subs...)
	}
	return out
}

func (t CategoryTree) Contains(main, sub string) bool {
	for _, s := range t[main] {
		if s == sub {
			return true
		}
	}
	return false
}

// Total counts sub-categories across all main categories
func (t CategoryTree) Total() int {
	n := 0
	for _, subs := range t {
		n += len(subs)
	}
	return n
}

// Stats is the stored dashboard counters object
type Stats struct {
	TotalCustomers          int     `json:"totalCustomers"`
	TotalOrders             int     `json:"totalOrders"`
	TotalClothes            int     `json:"totalClothes"`
	DeliveredOrders         int     `json:"deliveredOrders"`
	PendingPayments         float64 `json:"pendingPayments"`
	MonthlyBillingCustomers int     `json:"monthlyBillingCustomers"`
}
