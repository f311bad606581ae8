package service

import (
	"context"
	"testing"

	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/internal/infrastructure/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetDashboard(t *testing.T) {
	f := newFixture(t)
	svc := NewDashboardService(f.customers, f.orders, f.bills, f.stats)

	summary := svc.GetDashboard(context.Background())
	assert.Equal(t, 5, summary.Stats.TotalCustomers)
	assert.Equal(t, 3, summary.Stats.TotalOrders)
	assert.Equal(t, 12, summary.Stats.TotalClothes)
	assert.Equal(t, 0, summary.Stats.DeliveredOrders)
	assert.Equal(t, 3, summary.Stats.MonthlyBillingCustomers)
	// only BILL-2023-10 is outstanding: 150 + 90
	assert.Equal(t, 240.0, summary.Stats.PendingPayments)
	assert.Len(t, summary.RecentOrders, 3)
	assert.Len(t, summary.RecentCustomers, 5)
}

func TestDashboardService_DegradesOnCorruptCollection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, domainRepo.KeyOrders, []byte("{oops")))
	svc := NewDashboardService(f.customers, f.orders, f.bills, f.stats)

	summary := svc.GetDashboard(ctx)
	assert.Equal(t, 0, summary.Stats.TotalOrders)
	assert.NotNil(t, summary.RecentOrders)
	assert.Empty(t, summary.RecentOrders)
	assert.Equal(t, 5, summary.Stats.TotalCustomers)
}

func TestDashboardService_GetStoredStats(t *testing.T) {
	f := newFixture(t)
	svc := NewDashboardService(f.customers, f.orders, f.bills, f.stats)

	stats, err := svc.GetStoredStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 156, stats.TotalCustomers)
	assert.Equal(t, 44.0, stats.PendingPayments)
}

func TestDeliveryPersonService(t *testing.T) {
	f := newFixture(t)
	svc := NewDeliveryPersonService(f.persons)
	ctx := context.Background()

	persons, err := svc.ListDeliveryPersons(ctx, "amit")
	require.NoError(t, err)
	require.Len(t, persons, 1)
	assert.Equal(t, "DP-002", persons[0].ID)

	persons, err = svc.ListDeliveryPersons(ctx, "DP-00")
	require.NoError(t, err)
	assert.Len(t, persons, 2)

	totals, err := svc.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, &DeliveryTotals{Persons: 2, Active: 2, TotalOrders: 83, TotalClothes: 395}, totals)

	_, err = svc.GetDeliveryPerson(ctx, "DP-404")
	requireAppError(t, err, 404)
}

func TestAdminService_ResetData(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customers := NewCustomerService(f.customers, f.orders, f.bills)
	_, err := customers.ToggleMonthlyBilling(ctx, "CUST-002")
	require.NoError(t, err)

	svc := NewAdminService(f.store, nil, database.Reset, fixedClock)
	require.NoError(t, svc.ResetData(ctx))

	c, err := customers.GetCustomer(ctx, "CUST-002")
	require.NoError(t, err)
	assert.Equal(t, "OFF", string(c.MonthlyBilling))

	keys, err := svc.ListKeys(ctx)
	require.NoError(t, err)
	assert.Contains(t, keys, domainRepo.KeySchemaVersion)
}
