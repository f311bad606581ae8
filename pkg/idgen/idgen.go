// Package idgen mints the human-readable identifiers used across the laundry
// records. The formats are consumed by the mobile apps and the PDF export, so
// they must not change.
package idgen

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	customerIDPattern = regexp.MustCompile(`^CUST-\d{3,}$`)
	orderIDPattern    = regexp.MustCompile(`^ORD-\d{4}-\d{3}$`)
	itemIDPattern     = regexp.MustCompile(`^ITEM-(\d+-\d{1,3}|\d{4}-\d{3})$`)
	billIDPattern     = regexp.MustCompile(`^BILL-\d{4}-\d{2}(-\d{3})?$`)
	personIDPattern   = regexp.MustCompile(`^DP-\d{3}$`)
)

// MonthToken is the "-YYYY-MM" fragment that scopes bill sequences.
func MonthToken(t time.Time) string {
	return fmt.Sprintf("-%d-%02d", t.Year(), int(t.Month()))
}

// NextBillID counts existing IDs carrying now's year and month and returns
// the following sequence number. The count is taken from the snapshot given,
// so two callers holding the same snapshot get the same ID.
func NextBillID(existing []string, now time.Time) string {
	token := MonthToken(now)
	n := 0
	for _, id := range existing {
		if strings.Contains(id, token) {
			n++
		}
	}
	return fmt.Sprintf("BILL%s-%03d", token, n+1)
}

// ItemGenerator produces ITEM-<unix ms>-<0..999> identifiers. Collisions are
// possible within the same millisecond.
type ItemGenerator struct {
	mu  sync.Mutex
	now func() time.Time
	rnd *rand.Rand
}

func NewItemGenerator(now func() time.Time, rnd *rand.Rand) *ItemGenerator {
	if now == nil {
		now = time.Now
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x6c61756e647279))
	}
	return &ItemGenerator{now: now, rnd: rnd}
}

func (g *ItemGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("ITEM-%d-%d", g.now().UnixMilli(), g.rnd.IntN(1000))
}

// Intn exposes the generator's random source for the other random suffixes.
func (g *ItemGenerator) Intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.IntN(n)
}

func lastDigits(t time.Time, n int) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) <= n {
		return ms
	}
	return ms[len(ms)-n:]
}

// ManualCustomerID is assigned to customers entered through the manual bill form.
func ManualCustomerID(now time.Time) string {
	return "CUST-" + lastDigits(now, 6)
}

// ManualOrderRef is the single order reference attached to a manual bill.
func ManualOrderRef(now time.Time) string {
	return "ORD-" + lastDigits(now, 8)
}

// LineOrderID is the per-line order ID of a manual bill: ORD-YYYYMM-###.
func LineOrderID(now time.Time, seq int) string {
	return fmt.Sprintf("ORD-%s-%03d", now.Format("200601"), seq%1000)
}

func IsCustomerID(id string) bool       { return customerIDPattern.MatchString(id) }
func IsOrderID(id string) bool          { return orderIDPattern.MatchString(id) }
func IsItemID(id string) bool           { return itemIDPattern.MatchString(id) }
func IsBillID(id string) bool           { return billIDPattern.MatchString(id) }
func IsDeliveryPersonID(id string) bool { return personIDPattern.MatchString(id) }
