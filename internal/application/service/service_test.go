package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sangkips/laundry-admin/internal/domain/enum"
	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/internal/infrastructure/database"
	"github.com/sangkips/laundry-admin/internal/infrastructure/kvstore"
	"github.com/sangkips/laundry-admin/internal/infrastructure/repository"
	"github.com/sangkips/laundry-admin/pkg/apperror"
	"github.com/sangkips/laundry-admin/pkg/idgen"
	"github.com/stretchr/testify/require"
)

var june15 = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return june15 }

type fixture struct {
	store      domainRepo.KeyValueStore
	customers  domainRepo.CustomerRepository
	orders     domainRepo.OrderRepository
	bills      domainRepo.MonthlyBillRepository
	persons    domainRepo.DeliveryPersonRepository
	categories domainRepo.CategoryRepository
	stats      domainRepo.StatsRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kvstore.NewMemoryStore()
	require.NoError(t, database.Seed(context.Background(), store))
	return &fixture{
		store:      store,
		customers:  repository.NewCustomerRepository(store),
		orders:     repository.NewOrderRepository(store),
		bills:      repository.NewMonthlyBillRepository(store),
		persons:    repository.NewDeliveryPersonRepository(store),
		categories: repository.NewCategoryRepository(store),
		stats:      repository.NewStatsRepository(store),
	}
}

func (f *fixture) billService() *BillService {
	return NewBillService(f.bills, f.customers, f.orders, BillServiceConfig{
		DueAfter: 10 * 24 * time.Hour,
		Now:      fixedClock,
		Items:    idgen.NewItemGenerator(fixedClock, rand.New(rand.NewPCG(1, 2))),
	})
}

func requireAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	require.Error(t, err)
	require.True(t, apperror.IsAppError(err), "expected AppError, got %T: %v", err, err)
	appErr := apperror.GetAppError(err)
	require.Equal(t, code, appErr.Code, appErr.Message)
	return appErr
}

func (f *fixture) deliver(t *testing.T, orderID string) {
	t.Helper()
	o, err := f.orders.GetByID(context.Background(), orderID)
	require.NoError(t, err)
	require.NotNil(t, o)
	o.Status = enum.OrderStatusDelivered
	require.NoError(t, f.orders.Update(context.Background(), o))
}
