package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	"github.com/sangkips/laundry-admin/internal/domain/enum"
	"github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/pkg/apperror"
	"github.com/sangkips/laundry-admin/pkg/idgen"
	"github.com/sangkips/laundry-admin/pkg/pagination"
)

// DefaultBillCategory labels manual bill lines entered without a category
const DefaultBillCategory = "General"

// BillService handles monthly bill operations
type BillService struct {
	billRepo     repository.MonthlyBillRepository
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	items        *idgen.ItemGenerator
	now          Clock
	dueAfter     time.Duration

	// mu serialises ID assignment and the write that follows it
	mu sync.Mutex
}

// BillServiceConfig carries the tunables of BillService
type BillServiceConfig struct {
	DueAfter time.Duration
	Now      Clock
	Items    *idgen.ItemGenerator
}

// NewBillService creates a new bill service
func NewBillService(
	billRepo repository.MonthlyBillRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	cfg BillServiceConfig,
) *BillService {
	now := cfg.Now.orDefault()
	items := cfg.Items
	if items == nil {
		items = idgen.NewItemGenerator(now, nil)
	}
	return &BillService{
		billRepo:     billRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		items:        items,
		now:          now,
		dueAfter:     cfg.DueAfter,
	}
}

// BillFilter narrows the bill list. Month accepts YYYY-MM or "June 2025".
type BillFilter struct {
	CustomerID string
	Status     string
	Month      string
	Search     string
}

// ListBills lists bills matching filter
func (s *BillService) ListBills(ctx context.Context, filter BillFilter, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.MonthlyBill], error) {
	if !isAll(filter.Status) && !enum.BillStatus(filter.Status).IsValid() {
		return nil, apperror.NewFieldError("status", "must be Pending, Paid or Overdue")
	}
	month := ""
	if !isAll(filter.Month) {
		t, err := entity.ParseMonth(filter.Month)
		if err != nil {
			return nil, apperror.NewFieldError("month", err.Error())
		}
		month = t.Format("2006-01")
	}

	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, storageError("read", err)
	}

	filtered := make([]entity.MonthlyBill, 0, len(bills))
	for _, b := range bills {
		if filter.CustomerID != "" && b.CustomerID != filter.CustomerID {
			continue
		}
		if !isAll(filter.Status) && string(b.Status) != filter.Status {
			continue
		}
		if month != "" && b.MonthKey() != month {
			continue
		}
		if !matchesFold(filter.Search, b.BillID, b.CustomerName, b.CompanyName, b.Mobile) {
			continue
		}
		filtered = append(filtered, b)
	}
	return pagination.Paginate(filtered, params), nil
}

// GetBill retrieves a bill by ID
func (s *BillService) GetBill(ctx context.Context, billID string) (*entity.MonthlyBill, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, storageError("read", err)
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

func (s *BillService) nextBillID(ctx context.Context, now time.Time) (string, error) {
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return "", storageError("read", err)
	}
	ids := make([]string, len(bills))
	for i, b := range bills {
		ids[i] = b.BillID
	}
	return idgen.NextBillID(ids, now), nil
}

// NextBillID previews the ID the next created bill would receive
func (s *BillService) NextBillID(ctx context.Context) (string, error) {
	return s.nextBillID(ctx, s.now())
}

// ManualBillItemInput is one line of the manual bill form
type ManualBillItemInput struct {
	ItemName    string
	Category    string
	SubCategory string
	Price       float64
	Quantity    *int
}

// CreateManualBillInput represents the manual bill form
type CreateManualBillInput struct {
	CustomerName string
	Mobile       string
	CompanyName  string
	Email        string
	Address      string
	// Month defaults to the current month
	Month string
	Items []ManualBillItemInput
}

func (in *CreateManualBillInput) validate() error {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(in.CustomerName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customerName", Message: "is required"})
	}
	if strings.TrimSpace(in.Mobile) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "mobile", Message: "is required"})
	}
	if in.Month != "" {
		if _, err := entity.ParseMonth(in.Month); err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "month", Message: err.Error()})
		}
	}
	if len(in.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "at least one item is required"})
	}
	for i, it := range in.Items {
		field := fmt.Sprintf("items[%d]", i)
		if strings.TrimSpace(it.ItemName) == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".itemName", Message: "is required"})
		}
		if it.Price <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".price", Message: "must be greater than zero"})
		}
		if it.Quantity != nil && *it.Quantity < 1 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".quantity", Message: "must be at least 1"})
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateManualBill records a bill typed in by the admin. It gets a fresh
// customer ID, one order reference and minted item IDs.
func (s *BillService) CreateManualBill(ctx context.Context, input *CreateManualBillInput) (*entity.MonthlyBill, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	month := now.Format("2006-01")
	if input.Month != "" {
		month = entity.NormalizeMonth(input.Month)
	}

	lines := make([]entity.BillLine, len(input.Items))
	for i, it := range input.Items {
		qty := 1
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		category := strings.TrimSpace(it.Category)
		if category == "" {
			category = DefaultBillCategory
		}
		sub := strings.TrimSpace(it.SubCategory)
		if sub == "" {
			sub = DefaultBillCategory
		}
		lines[i] = entity.BillLine{
			ItemID:      s.items.Next(),
			OrderID:     idgen.LineOrderID(now, s.items.Intn(1000)),
			ItemName:    strings.TrimSpace(it.ItemName),
			Category:    category,
			SubCategory: sub,
			Price:       it.Price,
			Quantity:    &qty,
		}
	}

	bill := &entity.MonthlyBill{
		CustomerID:   idgen.ManualCustomerID(now),
		CustomerName: strings.TrimSpace(input.CustomerName),
		Mobile:       strings.TrimSpace(input.Mobile),
		CompanyName:  strings.TrimSpace(input.CompanyName),
		Email:        strings.TrimSpace(input.Email),
		Address:      strings.TrimSpace(input.Address),
		Month:        month,
		Status:       enum.BillStatusPending,
		Orders:       []string{idgen.ManualOrderRef(now)},
		ItemDetails:  lines,
	}
	if err := s.create(ctx, bill, now); err != nil {
		return nil, err
	}
	return bill, nil
}

// GenerateMonthlyBill assembles a bill from a customer's delivered orders in
// month that no other bill covers yet. Item IDs are carried over unchanged.
func (s *BillService) GenerateMonthlyBill(ctx context.Context, customerID, month string) (*entity.MonthlyBill, error) {
	monthStart, err := entity.ParseMonth(month)
	if err != nil {
		return nil, apperror.NewFieldError("month", err.Error())
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, storageError("read", err)
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if !customer.MonthlyBilling.Enabled() {
		return nil, apperror.NewUnprocessableError("Monthly billing is not enabled for this customer", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, storageError("read", err)
	}
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, storageError("read", err)
	}

	monthEnd := monthStart.AddDate(0, 1, 0)
	billed := func(orderID string) bool {
		for i := range bills {
			if bills[i].References(orderID) {
				return true
			}
		}
		return false
	}

	bill := &entity.MonthlyBill{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Mobile:       customer.Mobile,
		Email:        customer.Email,
		Address:      customer.Address,
		Month:        entity.MonthLabel(monthStart),
		Status:       enum.BillStatusPending,
		Orders:       []string{},
		ItemDetails:  []entity.BillLine{},
	}
	for i := range orders {
		o := &orders[i]
		if o.CustomerID != customer.ID || o.Status != enum.OrderStatusDelivered {
			continue
		}
		placed, err := o.PlacedAt()
		if err != nil || placed.Before(monthStart) || !placed.Before(monthEnd) {
			continue
		}
		if billed(o.OrderID) {
			continue
		}
		bill.Orders = append(bill.Orders, o.OrderID)
		for _, it := range o.Items {
			bill.ItemDetails = append(bill.ItemDetails, entity.BillLine{
				ItemID:      it.ItemID,
				OrderID:     o.OrderID,
				ItemName:    it.SubCategory,
				Category:    it.Category,
				SubCategory: it.SubCategory,
				Price:       it.Price,
				Quantity:    it.Quantity,
			})
		}
	}
	if len(bill.Orders) == 0 {
		return nil, apperror.NewUnprocessableError("No unbilled delivered orders for "+bill.Month, nil)
	}

	now := s.now()
	ids := make([]string, len(bills))
	for i, b := range bills {
		ids[i] = b.BillID
	}
	bill.BillID = idgen.NextBillID(ids, now)
	s.stamp(bill, now)
	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, s.createError(err)
	}
	return bill, nil
}

// create assigns the next bill ID and stores bill. Callers hold s.mu.
func (s *BillService) create(ctx context.Context, bill *entity.MonthlyBill, now time.Time) error {
	id, err := s.nextBillID(ctx, now)
	if err != nil {
		return err
	}
	bill.BillID = id
	s.stamp(bill, now)
	if err := s.billRepo.Create(ctx, bill); err != nil {
		return s.createError(err)
	}
	return nil
}

func (s *BillService) stamp(bill *entity.MonthlyBill, now time.Time) {
	bill.CreatedAt = now.Format(entity.BillDateLayout)
	bill.DueDate = now.Add(s.dueAfter).Format(entity.BillDateLayout)
	bill.Recalculate()
}

func (s *BillService) createError(err error) error {
	if errors.Is(err, repository.ErrDuplicateKey) {
		return apperror.NewConflictError("A bill with this ID already exists")
	}
	return storageError("write", err)
}

// UpdateBillStatus sets a bill's payment status
func (s *BillService) UpdateBillStatus(ctx context.Context, billID, status string) (*entity.MonthlyBill, error) {
	next, err := enum.ParseBillStatus(status)
	if err != nil {
		return nil, apperror.NewFieldError("status", "must be Pending, Paid or Overdue")
	}

	bill, err := s.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill.Status == next {
		return bill, nil
	}

	bill.Status = next
	bill.Recalculate()
	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, storageError("write", err)
	}
	return bill, nil
}
