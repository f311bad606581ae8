package repository

import (
	"context"
	"fmt"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
)

type monthlyBillRepository struct {
	bills *collection[entity.MonthlyBill]
}

// NewMonthlyBillRepository creates a new monthly bill repository
func NewMonthlyBillRepository(store domainRepo.KeyValueStore) domainRepo.MonthlyBillRepository {
	return &monthlyBillRepository{bills: newCollection[entity.MonthlyBill](store, domainRepo.KeyMonthlyBills)}
}

func (r *monthlyBillRepository) List(ctx context.Context) ([]entity.MonthlyBill, error) {
	return r.bills.load(ctx)
}

func (r *monthlyBillRepository) GetByID(ctx context.Context, billID string) (*entity.MonthlyBill, error) {
	bills, err := r.bills.load(ctx)
	if err != nil {
		return nil, err
	}
	return find(bills, func(b *entity.MonthlyBill) bool { return b.BillID == billID }), nil
}

// Create appends bill. An existing bill with the same ID is never overwritten.
func (r *monthlyBillRepository) Create(ctx context.Context, bill *entity.MonthlyBill) error {
	return r.bills.mutate(ctx, func(bills []entity.MonthlyBill) ([]entity.MonthlyBill, error) {
		if find(bills, func(b *entity.MonthlyBill) bool { return b.BillID == bill.BillID }) != nil {
			return nil, fmt.Errorf("bill %s: %w", bill.BillID, domainRepo.ErrDuplicateKey)
		}
		return append(bills, *bill), nil
	})
}

func (r *monthlyBillRepository) Update(ctx context.Context, bill *entity.MonthlyBill) error {
	return r.bills.mutate(ctx, func(bills []entity.MonthlyBill) ([]entity.MonthlyBill, error) {
		return replace(bills, *bill, func(b *entity.MonthlyBill) bool { return b.BillID == bill.BillID })
	})
}
