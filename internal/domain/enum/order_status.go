package enum

import (
	"errors"
	"fmt"
)

// OrderStatus represents the processing stage of a laundry order
type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "Order Placed"
	OrderStatusPickedUp   OrderStatus = "Picked Up"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusReady      OrderStatus = "Ready"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// ErrInvalidTransition is returned when a status change skips or reverses the sequence
var ErrInvalidTransition = errors.New("invalid order status transition")

// ErrUnknownOrderStatus is returned for values outside the fixed sequence
var ErrUnknownOrderStatus = errors.New("unknown order status")

// OrderStatuses lists every status in processing order
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPlaced,
		OrderStatusPickedUp,
		OrderStatusProcessing,
		OrderStatusReady,
		OrderStatusDelivered,
	}
}

// orderTransitions maps each status to the statuses it may move to
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced:     {OrderStatusPickedUp},
	OrderStatusPickedUp:   {OrderStatusProcessing},
	OrderStatusProcessing: {OrderStatusReady},
	OrderStatusReady:      {OrderStatusDelivered},
	OrderStatusDelivered:  {},
}

func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known statuses
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Rank is the zero-based position of s in the sequence, or -1
func (s OrderStatus) Rank() int {
	for i, st := range OrderStatuses() {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the statuses reachable from s in one step
func (s OrderStatus) Next() []OrderStatus {
	return append([]OrderStatus(nil), orderTransitions[s]...)
}

// CanTransitionTo reports whether next immediately follows s
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseOrderStatus validates a raw status string
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOrderStatus, raw)
	}
	return s, nil
}

// TransitionPolicy decides whether an order may move between two statuses
type TransitionPolicy interface {
	Check(from, to OrderStatus) error
}

// PermissivePolicy accepts any known status. This is how the admin status
// screen has always behaved.
type PermissivePolicy struct{}

func (PermissivePolicy) Check(from, to OrderStatus) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownOrderStatus, to)
	}
	return nil
}

// StrictPolicy only allows a step to the immediate successor.
type StrictPolicy struct{}

func (StrictPolicy) Check(from, to OrderStatus) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownOrderStatus, to)
	}
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, from, to)
	}
	return nil
}

// NewTransitionPolicy picks the policy for the strict flag
func NewTransitionPolicy(strict bool) TransitionPolicy {
	if strict {
		return StrictPolicy{}
	}
	return PermissivePolicy{}
}

// OrderSource identifies which mobile app created an order
type OrderSource string

const (
	OrderSourceCustomerApp OrderSource = "Customer App"
	OrderSourceDeliveryApp OrderSource = "Delivery App"
)
