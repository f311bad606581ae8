package service

import (
	"context"
	"errors"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	"github.com/sangkips/laundry-admin/internal/domain/enum"
	"github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/pkg/apperror"
	"github.com/sangkips/laundry-admin/pkg/pagination"
)

// OrderService handles order-related operations. Orders are created by the
// mobile apps; the admin only reads them and moves their status.
type OrderService struct {
	orderRepo repository.OrderRepository
	policy    enum.TransitionPolicy
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, policy enum.TransitionPolicy) *OrderService {
	if policy == nil {
		policy = enum.PermissivePolicy{}
	}
	return &OrderService{orderRepo: orderRepo, policy: policy}
}

// OrderFilter narrows the order list. Status and Source accept "all".
type OrderFilter struct {
	Search     string
	Status     string
	Source     string
	CustomerID string
}

// OrderCounts backs the summary cards of the order screen
type OrderCounts struct {
	Total       int                      `json:"total"`
	Filtered    int                      `json:"filtered"`
	CustomerApp int                      `json:"customerApp"`
	DeliveryApp int                      `json:"deliveryApp"`
	ByStatus    map[enum.OrderStatus]int `json:"byStatus"`
}

func (f OrderFilter) validate() error {
	var fieldErrors []apperror.FieldError
	if !isAll(f.Status) && !enum.OrderStatus(f.Status).IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "status", Message: "unknown order status"})
	}
	if !isAll(f.Source) && f.Source != string(enum.OrderSourceCustomerApp) && f.Source != string(enum.OrderSourceDeliveryApp) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "source", Message: "must be Customer App or Delivery App"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func (f OrderFilter) match(o *entity.Order) bool {
	if !isAll(f.Status) && string(o.Status) != f.Status {
		return false
	}
	if !isAll(f.Source) && string(o.OrderSource) != f.Source {
		return false
	}
	if f.CustomerID != "" && o.CustomerID != f.CustomerID {
		return false
	}
	return matchesFold(f.Search, o.OrderID, o.CustomerName)
}

func (s *OrderService) filter(ctx context.Context, filter OrderFilter) ([]entity.Order, []entity.Order, error) {
	if err := filter.validate(); err != nil {
		return nil, nil, err
	}

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, nil, storageError("read", err)
	}

	filtered := make([]entity.Order, 0, len(orders))
	for i := range orders {
		if filter.match(&orders[i]) {
			filtered = append(filtered, orders[i])
		}
	}
	return orders, filtered, nil
}

// ListOrders lists orders matching filter, searching order ID and customer name
func (s *OrderService) ListOrders(ctx context.Context, filter OrderFilter, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	_, filtered, err := s.filter(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pagination.Paginate(filtered, params), nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, storageError("read", err)
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// UpdateStatus moves an order to status, subject to the transition policy
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*entity.Order, error) {
	next, err := enum.ParseOrderStatus(status)
	if err != nil {
		return nil, apperror.NewFieldError("status", "unknown order status")
	}

	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == next {
		return order, nil
	}

	if err := s.policy.Check(order.Status, next); err != nil {
		if errors.Is(err, enum.ErrInvalidTransition) {
			return nil, apperror.NewUnprocessableError(
				"Order cannot move from "+order.Status.String()+" to "+next.String(), err)
		}
		return nil, apperror.NewFieldError("status", err.Error())
	}

	order.Status = next
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, storageError("write", err)
	}
	return order, nil
}

// CountOrders returns totals by source and status plus the filtered count
func (s *OrderService) CountOrders(ctx context.Context, filter OrderFilter) (*OrderCounts, error) {
	all, filtered, err := s.filter(ctx, filter)
	if err != nil {
		return nil, err
	}

	counts := &OrderCounts{
		Total:    len(all),
		Filtered: len(filtered),
		ByStatus: make(map[enum.OrderStatus]int, len(enum.OrderStatuses())),
	}
	for _, st := range enum.OrderStatuses() {
		counts.ByStatus[st] = 0
	}
	for _, o := range all {
		switch o.OrderSource {
		case enum.OrderSourceCustomerApp:
			counts.CustomerApp++
		case enum.OrderSourceDeliveryApp:
			counts.DeliveryApp++
		}
		if o.Status.IsValid() {
			counts.ByStatus[o.Status]++
		}
	}
	return counts, nil
}
