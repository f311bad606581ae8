package enum

import "fmt"

// BillStatus represents the payment state of a monthly bill
type BillStatus string

const (
	BillStatusPending BillStatus = "Pending"
	BillStatusPaid    BillStatus = "Paid"
	BillStatusOverdue BillStatus = "Overdue"
)

func (s BillStatus) String() string {
	return string(s)
}

func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusPending, BillStatusPaid, BillStatusOverdue:
		return true
	}
	return false
}

// IsOutstanding reports whether the bill still counts towards pending payments
func (s BillStatus) IsOutstanding() bool {
	return s == BillStatusPending || s == BillStatusOverdue
}

func ParseBillStatus(raw string) (BillStatus, error) {
	s := BillStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown bill status %q", raw)
	}
	return s, nil
}
