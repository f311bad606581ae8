package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	"github.com/sangkips/laundry-admin/internal/domain/enum"
	"github.com/sangkips/laundry-admin/pkg/idgen"
	"github.com/sangkips/laundry-admin/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manualInput() *CreateManualBillInput {
	return &CreateManualBillInput{
		CustomerName: "Meera Iyer",
		Mobile:       "+91 9000000001",
		CompanyName:  "Iyer Caterers",
		Items: []ManualBillItemInput{
			{ItemName: "Table cloth", Price: 60, Quantity: money.Qty(3)},
			{ItemName: "Apron", Price: 40},
		},
	}
}

func TestBillService_NextBillID(t *testing.T) {
	f := newFixture(t)
	svc := f.billService()

	// seeded bills belong to 2023 and do not count towards June 2025
	id, err := svc.NextBillID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BILL-2025-06-001", id)
}

func TestBillService_CreateManualBill(t *testing.T) {
	f := newFixture(t)
	svc := f.billService()
	ctx := context.Background()

	bill, err := svc.CreateManualBill(ctx, manualInput())
	require.NoError(t, err)

	assert.Equal(t, "BILL-2025-06-001", bill.BillID)
	assert.Equal(t, "2025-06", bill.Month)
	assert.Equal(t, enum.BillStatusPending, bill.Status)
	assert.Equal(t, "2025-06-15", bill.CreatedAt)
	assert.Equal(t, "2025-06-25", bill.DueDate)
	assert.Equal(t, 220.0, bill.TotalAmount)
	assert.Equal(t, 4, bill.Items)
	assert.True(t, bill.TotalsConsistent())
	assert.True(t, idgen.IsCustomerID(bill.CustomerID))
	require.Len(t, bill.Orders, 1)
	assert.Regexp(t, `^ORD-\d{8}$`, bill.Orders[0])

	require.Len(t, bill.ItemDetails, 2)
	for _, l := range bill.ItemDetails {
		assert.True(t, idgen.IsItemID(l.ItemID), l.ItemID)
		assert.Regexp(t, `^ORD-202506-\d{3}$`, l.OrderID)
		assert.Equal(t, DefaultBillCategory, l.Category)
		require.NotNil(t, l.Quantity)
	}
	assert.Equal(t, 1, *bill.ItemDetails[1].Quantity, "quantity defaults to one")

	second, err := svc.CreateManualBill(ctx, manualInput())
	require.NoError(t, err)
	assert.Equal(t, "BILL-2025-06-002", second.BillID)

	stored, err := svc.GetBill(ctx, "BILL-2025-06-001")
	require.NoError(t, err)
	assert.Equal(t, bill.ItemDetails, stored.ItemDetails)
}

func TestBillService_CreateManualBill_Validation(t *testing.T) {
	f := newFixture(t)
	svc := f.billService()

	tests := []struct {
		name   string
		mutate func(*CreateManualBillInput)
		field  string
	}{
		{"missing name", func(in *CreateManualBillInput) { in.CustomerName = "  " }, "customerName"},
		{"missing mobile", func(in *CreateManualBillInput) { in.Mobile = "" }, "mobile"},
		{"no items", func(in *CreateManualBillInput) { in.Items = nil }, "items"},
		{"unnamed item", func(in *CreateManualBillInput) { in.Items[0].ItemName = "" }, "items[0].itemName"},
		{"zero price", func(in *CreateManualBillInput) { in.Items[1].Price = 0 }, "items[1].price"},
		{"zero quantity", func(in *CreateManualBillInput) { in.Items[0].Quantity = money.Qty(0) }, "items[0].quantity"},
		{"bad month", func(in *CreateManualBillInput) { in.Month = "13/2025" }, "month"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := manualInput()
			tt.mutate(in)
			_, err := svc.CreateManualBill(context.Background(), in)
			appErr := requireAppError(t, err, http.StatusUnprocessableEntity)
			require.Len(t, appErr.Errors, 1)
			assert.Equal(t, tt.field, appErr.Errors[0].Field)
		})
	}

	bills, err := f.bills.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, bills, 2, "nothing is stored on validation failure")
}

func TestBillService_CreateManualBill_ConcurrentIDsAreUnique(t *testing.T) {
	f := newFixture(t)
	svc := f.billService()

	const n = 10
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bill, err := svc.CreateManualBill(context.Background(), manualInput())
			if assert.NoError(t, err) {
				ids[i] = bill.BillID
			}
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}
	for i := 1; i <= n; i++ {
		assert.True(t, seen[fmt.Sprintf("BILL-2025-06-%03d", i)])
	}
}

func TestBillService_CreateManualBill_DuplicateIDConflicts(t *testing.T) {
	f := newFixture(t)
	svc := f.billService()
	ctx := context.Background()

	// a gap in the sequence makes the count-based ID collide
	require.NoError(t, f.bills.Create(ctx, &entity.MonthlyBill{BillID: "BILL-2025-06-002", Status: enum.BillStatusPaid}))
	_, err := svc.CreateManualBill(ctx, manualInput())
	requireAppError(t, err, http.StatusConflict)
}

func TestBillService_GenerateMonthlyBill(t *testing.T) {
	f := newFixture(t)
	svc := f.billService()
	ctx := context.Background()

	// ORD-2409-001 was placed by CUST-001 on 2023-12-01
	_, err := svc.GenerateMonthlyBill(ctx, "CUST-001", "2023-12")
	requireAppError(t, err, http.StatusUnprocessableEntity)

	f.deliver(t, "ORD-2409-001")

	bill, err := svc.GenerateMonthlyBill(ctx, "CUST-001", "December 2023")
	require.NoError(t, err)
	assert.Equal(t, "BILL-2025-06-001", bill.BillID)
	assert.Equal(t, "December 2023", bill.Month)
	assert.Equal(t, []string{"ORD-2409-001"}, bill.Orders)
	require.Len(t, bill.ItemDetails, 5)
	assert.Equal(t, "ITEM-2409-001", bill.ItemDetails[0].ItemID, "item IDs are carried over")
	assert.Equal(t, "Shirt", bill.ItemDetails[0].ItemName)
	assert.Equal(t, 550.0, bill.TotalAmount)
	assert.Equal(t, 5, bill.Items)

	// the order is now billed
	_, err = svc.GenerateMonthlyBill(ctx, "CUST-001", "2023-12")
	requireAppError(t, err, http.StatusUnprocessableEntity)
}

func TestBillService_GenerateMonthlyBill_Rejections(t *testing.T) {
	f := newFixture(t)
	svc := f.billService()
	ctx := context.Background()
	f.deliver(t, "ORD-2409-002")

	// CUST-002 has monthly billing OFF
	_, err := svc.GenerateMonthlyBill(ctx, "CUST-002", "2023-12")
	requireAppError(t, err, http.StatusUnprocessableEntity)

	_, err = svc.GenerateMonthlyBill(ctx, "CUST-404", "2023-12")
	requireAppError(t, err, http.StatusNotFound)

	_, err = svc.GenerateMonthlyBill(ctx, "CUST-001", "not a month")
	requireAppError(t, err, http.StatusUnprocessableEntity)
}

func TestBillService_ListBills(t *testing.T) {
	f := newFixture(t)
	svc := f.billService()
	ctx := context.Background()

	res, err := svc.ListBills(ctx, BillFilter{Month: "2023-11"}, nil)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "BILL-2023-11", res.Items[0].BillID)

	res, err = svc.ListBills(ctx, BillFilter{Status: "Pending"}, nil)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "CUST-002", res.Items[0].CustomerID)

	res, err = svc.ListBills(ctx, BillFilter{Search: "enterprises"}, nil)
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	_, err = svc.ListBills(ctx, BillFilter{Status: "Lost"}, nil)
	requireAppError(t, err, http.StatusUnprocessableEntity)
}

func TestBillService_UpdateBillStatus(t *testing.T) {
	f := newFixture(t)
	svc := f.billService()
	ctx := context.Background()

	bill, err := svc.UpdateBillStatus(ctx, "BILL-2023-10", "Paid")
	require.NoError(t, err)
	assert.Equal(t, enum.BillStatusPaid, bill.Status)

	stored, err := svc.GetBill(ctx, "BILL-2023-10")
	require.NoError(t, err)
	assert.Equal(t, enum.BillStatusPaid, stored.Status)
	assert.Equal(t, bill.TotalAmount, stored.TotalAmount)

	_, err = svc.UpdateBillStatus(ctx, "BILL-2023-10", "Refunded")
	requireAppError(t, err, http.StatusUnprocessableEntity)

	_, err = svc.UpdateBillStatus(ctx, "BILL-1999-01", "Paid")
	requireAppError(t, err, http.StatusNotFound)
}
