package enum

import "fmt"

// LoginMethod is how a customer signed in to the mobile app
type LoginMethod string

const (
	LoginMethodOTP   LoginMethod = "OTP"
	LoginMethodEmail LoginMethod = "Email"
)

// MonthlyBilling is the per-customer opt-in flag, stored as ON/OFF
type MonthlyBilling string

const (
	MonthlyBillingOn  MonthlyBilling = "ON"
	MonthlyBillingOff MonthlyBilling = "OFF"
)

func (m MonthlyBilling) Enabled() bool {
	return m == MonthlyBillingOn
}

// Toggle flips ON to OFF and anything else to ON
func (m MonthlyBilling) Toggle() MonthlyBilling {
	if m == MonthlyBillingOn {
		return MonthlyBillingOff
	}
	return MonthlyBillingOn
}

func ParseMonthlyBilling(raw string) (MonthlyBilling, error) {
	switch MonthlyBilling(raw) {
	case MonthlyBillingOn, MonthlyBillingOff:
		return MonthlyBilling(raw), nil
	}
	return "", fmt.Errorf("monthly billing must be ON or OFF, got %q", raw)
}

// PersonStatus is the employment state of a delivery person
type PersonStatus string

const (
	PersonStatusActive   PersonStatus = "Active"
	PersonStatusInactive PersonStatus = "Inactive"
)
