package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	"github.com/sangkips/laundry-admin/internal/domain/enum"
	"github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/pkg/apperror"
	"github.com/sangkips/laundry-admin/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	billRepo     repository.MonthlyBillRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	billRepo repository.MonthlyBillRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		billRepo:     billRepo,
	}
}

// CustomerFilter narrows the customer list. MonthlyBilling is all, on or off.
type CustomerFilter struct {
	Search         string
	MonthlyBilling string
}

// CustomerCounts backs the summary cards of the customer screen
type CustomerCounts struct {
	Total          int `json:"total"`
	MonthlyBilling int `json:"monthlyBilling"`
	Filtered       int `json:"filtered"`
}

// ListCustomers searches name, mobile and email and filters on monthly billing
func (s *CustomerService) ListCustomers(ctx context.Context, filter CustomerFilter, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Customer], error) {
	var billing enum.MonthlyBilling
	if !isAll(filter.MonthlyBilling) {
		b, err := enum.ParseMonthlyBilling(strings.ToUpper(strings.TrimSpace(filter.MonthlyBilling)))
		if err != nil {
			return nil, apperror.NewFieldError("monthlyBilling", "must be all, on or off")
		}
		billing = b
	}

	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, storageError("read", err)
	}

	filtered := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if billing != "" && c.MonthlyBilling != billing {
			continue
		}
		if !matchesFold(filter.Search, c.Name, c.Mobile, c.Email) {
			continue
		}
		filtered = append(filtered, c)
	}

	return pagination.Paginate(filtered, params), nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("read", err)
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// GetCustomerOrders lists the orders placed by a customer
func (s *CustomerService) GetCustomerOrders(ctx context.Context, id string) ([]entity.Order, error) {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, storageError("read", err)
	}
	out := []entity.Order{}
	for _, o := range orders {
		if o.CustomerID == id {
			out = append(out, o)
		}
	}
	return out, nil
}

// GetCustomerBills lists the monthly bills issued to a customer
func (s *CustomerService) GetCustomerBills(ctx context.Context, id string) ([]entity.MonthlyBill, error) {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return nil, err
	}

	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, storageError("read", err)
	}
	out := []entity.MonthlyBill{}
	for _, b := range bills {
		if b.CustomerID == id {
			out = append(out, b)
		}
	}
	return out, nil
}

// ToggleMonthlyBilling flips the customer's monthly billing flag
func (s *CustomerService) ToggleMonthlyBilling(ctx context.Context, id string) (*entity.Customer, error) {
	customer, err := s.customerRepo.Modify(ctx, id, func(c *entity.Customer) error {
		c.MonthlyBilling = c.MonthlyBilling.Toggle()
		return nil
	})
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if err != nil {
		return nil, storageError("write", err)
	}
	return customer, nil
}

// SetMonthlyBilling stores an explicit ON or OFF value
func (s *CustomerService) SetMonthlyBilling(ctx context.Context, id, value string) (*entity.Customer, error) {
	billing, err := enum.ParseMonthlyBilling(strings.ToUpper(strings.TrimSpace(value)))
	if err != nil {
		return nil, apperror.NewFieldError("monthlyBilling", "must be ON or OFF")
	}

	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer.MonthlyBilling == billing {
		return customer, nil
	}

	customer.MonthlyBilling = billing
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, storageError("write", err)
	}
	return customer, nil
}

// UpdateCustomerInput represents the editable contact fields. Nil fields are
// left unchanged.
type UpdateCustomerInput struct {
	ID      string
	Name    *string
	Mobile  *string
	Email   *string
	Address *string
}

// UpdateCustomer updates a customer's contact details
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	var fieldErrors []apperror.FieldError
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "must not be empty"})
	}
	if input.Mobile != nil && strings.TrimSpace(*input.Mobile) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "mobile", Message: "must not be empty"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	customer, err := s.GetCustomer(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = strings.TrimSpace(*input.Name)
	}
	if input.Mobile != nil {
		customer.Mobile = strings.TrimSpace(*input.Mobile)
	}
	if input.Email != nil {
		customer.Email = strings.TrimSpace(*input.Email)
	}
	if input.Address != nil {
		customer.Address = strings.TrimSpace(*input.Address)
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, storageError("write", err)
	}
	return customer, nil
}

// CountCustomers returns the totals shown above the customer list
func (s *CustomerService) CountCustomers(ctx context.Context, filter CustomerFilter) (*CustomerCounts, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, storageError("read", err)
	}

	counts := &CustomerCounts{Total: len(customers)}
	for _, c := range customers {
		if c.MonthlyBilling.Enabled() {
			counts.MonthlyBilling++
		}
	}

	page, err := s.ListCustomers(ctx, filter, &pagination.PaginationParams{Page: 1, PerPage: 1})
	if err != nil {
		return nil, err
	}
	counts.Filtered = int(page.Pagination.Total)
	return counts, nil
}
