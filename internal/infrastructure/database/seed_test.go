package database

import (
	"context"
	"testing"

	"github.com/sangkips/laundry-admin/internal/config"
	"github.com/sangkips/laundry-admin/internal/domain/entity"
	"github.com/sangkips/laundry-admin/internal/domain/enum"
	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/internal/infrastructure/kvstore"
	"github.com/sangkips/laundry-admin/internal/infrastructure/repository"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_WritesEveryKey(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	require.NoError(t, Seed(ctx, store))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		domainRepo.KeyCustomers,
		domainRepo.KeyOrders,
		domainRepo.KeyDeliveryPersons,
		domainRepo.KeyMonthlyBills,
		domainRepo.KeyCategories,
		domainRepo.KeyCategoryPrices,
		domainRepo.KeyStats,
		domainRepo.KeySchemaVersion,
	}, keys)

	customers, err := repository.NewCustomerRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 5)

	orders, err := repository.NewOrderRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for _, o := range orders {
		assert.True(t, o.TotalsConsistent(), o.OrderID)
		assert.Equal(t, len(o.Items), o.TotalClothes, o.OrderID)
	}
	assert.Equal(t, 550.0, orders[0].TotalAmount)

	bills, err := repository.NewMonthlyBillRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 2)
	for _, b := range bills {
		assert.True(t, b.TotalsConsistent(), b.BillID)
	}

	var version int
	found, err := kvstore.GetJSON(ctx, store, domainRepo.KeySchemaVersion, &version)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, SchemaVersion, version)
}

func TestSeed_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	customers := repository.NewCustomerRepository(store)

	require.NoError(t, Seed(ctx, store))

	// toggle CUST-002, then seed again: the edit must survive
	c, err := customers.GetByID(ctx, "CUST-002")
	require.NoError(t, err)
	require.Equal(t, enum.MonthlyBillingOff, c.MonthlyBilling)
	c.MonthlyBilling = c.MonthlyBilling.Toggle()
	require.NoError(t, customers.Update(ctx, c))

	require.NoError(t, Seed(ctx, store))

	c, err = customers.GetByID(ctx, "CUST-002")
	require.NoError(t, err)
	assert.Equal(t, enum.MonthlyBillingOn, c.MonthlyBilling)
}

func TestSeed_FillsOnlyMissingKeys(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	require.NoError(t, kvstore.SetJSON(ctx, store, domainRepo.KeyCustomers, []entity.Customer{}))
	require.NoError(t, store.Set(ctx, domainRepo.KeyOrders, []byte("null")))
	require.NoError(t, store.Set(ctx, domainRepo.KeyMonthlyBills, []byte("{broken")))

	require.NoError(t, Seed(ctx, store))

	customers, err := repository.NewCustomerRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers, "an empty collection is data, not absence")

	orders, err := repository.NewOrderRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 3, "null is treated as absent")

	raw, err := store.Get(ctx, domainRepo.KeyMonthlyBills)
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(raw), "corrupt values are not overwritten")
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, Seed(ctx, store))
	require.NoError(t, store.Set(ctx, "scratch", []byte(`"x"`)))
	require.NoError(t, kvstore.SetJSON(ctx, store, domainRepo.KeyCustomers, []entity.Customer{}))

	require.NoError(t, Reset(ctx, store))

	_, err := store.Get(ctx, "scratch")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	customers, err := repository.NewCustomerRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 5)
}

func TestOpenStore_MemoryAndSQLite(t *testing.T) {
	ctx := context.Background()

	v := viper.New()
	v.Set("STORE_DRIVER", DriverMemory)
	store, closeFn, err := OpenStore(ctx, config.FromViper(v))
	require.NoError(t, err)
	require.NoError(t, Seed(ctx, store))
	require.NoError(t, closeFn())

	v = viper.New()
	v.Set("STORE_DRIVER", DriverSQLite)
	v.Set("STORE_PATH", t.TempDir()+"/laundry.db")
	store, closeFn, err = OpenStore(ctx, config.FromViper(v))
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, Seed(ctx, store))
	customers, err := repository.NewCustomerRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 5)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "cassandra")
	_, _, err := OpenStore(context.Background(), config.FromViper(v))
	assert.Error(t, err)
}
