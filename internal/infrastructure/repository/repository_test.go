package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	"github.com/sangkips/laundry-admin/internal/domain/enum"
	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/internal/infrastructure/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCollection_AbsentIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	customers, err := GetCollection[entity.Customer](ctx, store, domainRepo.KeyCustomers)
	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestGetCollection_Corrupt(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, domainRepo.KeyOrders, []byte("{not json")))

	_, err := GetCollection[entity.Order](ctx, store, domainRepo.KeyOrders)
	require.Error(t, err)
	assert.True(t, kvstore.IsCorrupt(err))
}

func TestSaveCollection_NilStoredAsEmptyArray(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	require.NoError(t, SaveCollection[entity.Customer](ctx, store, domainRepo.KeyCustomers, nil))
	raw, err := store.Get(ctx, domainRepo.KeyCustomers)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestCustomerRepository_UpdateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(kvstore.NewMemoryStore())

	require.NoError(t, repo.SaveAll(ctx, []entity.Customer{
		{ID: "CUST-001", Name: "Suresh Kumar", MonthlyBilling: enum.MonthlyBillingOn},
		{ID: "CUST-002", Name: "Priya Sharma", MonthlyBilling: enum.MonthlyBillingOff},
	}))

	c, err := repo.GetByID(ctx, "CUST-002")
	require.NoError(t, err)
	require.NotNil(t, c)
	c.MonthlyBilling = c.MonthlyBilling.Toggle()
	require.NoError(t, repo.Update(ctx, c))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "CUST-001", all[0].ID)
	assert.Equal(t, enum.MonthlyBillingOn, all[1].MonthlyBilling)

	missing, err := repo.GetByID(ctx, "CUST-999")
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = repo.Update(ctx, &entity.Customer{ID: "CUST-999"})
	assert.True(t, errors.Is(err, domainRepo.ErrRecordNotFound))
}

func TestCustomerRepository_Modify(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(kvstore.NewMemoryStore())
	require.NoError(t, repo.SaveAll(ctx, []entity.Customer{{ID: "CUST-001", MonthlyBilling: enum.MonthlyBillingOff}}))

	c, err := repo.Modify(ctx, "CUST-001", func(c *entity.Customer) error {
		c.MonthlyBilling = c.MonthlyBilling.Toggle()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, enum.MonthlyBillingOn, c.MonthlyBilling)

	stored, err := repo.GetByID(ctx, "CUST-001")
	require.NoError(t, err)
	assert.Equal(t, enum.MonthlyBillingOn, stored.MonthlyBilling)

	boom := errors.New("boom")
	_, err = repo.Modify(ctx, "CUST-001", func(c *entity.Customer) error {
		c.Name = "lost"
		return boom
	})
	assert.ErrorIs(t, err, boom)
	stored, err = repo.GetByID(ctx, "CUST-001")
	require.NoError(t, err)
	assert.Empty(t, stored.Name, "failed modify is not saved")

	_, err = repo.Modify(ctx, "CUST-999", func(*entity.Customer) error { return nil })
	assert.ErrorIs(t, err, domainRepo.ErrRecordNotFound)
}

func TestCustomerRepository_GetByIDReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(kvstore.NewMemoryStore())
	require.NoError(t, repo.SaveAll(ctx, []entity.Customer{{ID: "CUST-001", Name: "Suresh Kumar"}}))

	c, err := repo.GetByID(ctx, "CUST-001")
	require.NoError(t, err)
	c.Name = "changed"

	again, err := repo.GetByID(ctx, "CUST-001")
	require.NoError(t, err)
	assert.Equal(t, "Suresh Kumar", again.Name)
}

func TestOrderRepository_ConcurrentUpdatesAreNotLost(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(kvstore.NewMemoryStore())

	orders := make([]entity.Order, 20)
	for i := range orders {
		orders[i] = entity.Order{OrderID: "ORD-2409-" + string(rune('A'+i)), Status: enum.OrderStatusPlaced}
	}
	require.NoError(t, repo.SaveAll(ctx, orders))

	var wg sync.WaitGroup
	for _, o := range orders {
		wg.Add(1)
		go func(o entity.Order) {
			defer wg.Done()
			o.Status = enum.OrderStatusPickedUp
			assert.NoError(t, repo.Update(ctx, &o))
		}(o)
	}
	wg.Wait()

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	for _, o := range stored {
		assert.Equal(t, enum.OrderStatusPickedUp, o.Status, o.OrderID)
	}
}

func TestMonthlyBillRepository_CreateRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewMonthlyBillRepository(kvstore.NewMemoryStore())

	bill := &entity.MonthlyBill{BillID: "BILL-2025-06-001", Status: enum.BillStatusPending}
	require.NoError(t, repo.Create(ctx, bill))

	err := repo.Create(ctx, bill)
	assert.True(t, errors.Is(err, domainRepo.ErrDuplicateKey))

	bill.Status = enum.BillStatusPaid
	require.NoError(t, repo.Update(ctx, bill))

	got, err := repo.GetByID(ctx, "BILL-2025-06-001")
	require.NoError(t, err)
	assert.Equal(t, enum.BillStatusPaid, got.Status)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeliveryPersonRepository(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, SaveCollection(ctx, store, domainRepo.KeyDeliveryPersons, []entity.DeliveryPerson{
		{ID: "DP-001", Name: "Raj Kumar", Status: enum.PersonStatusActive},
	}))
	repo := NewDeliveryPersonRepository(store)

	p, err := repo.GetByID(ctx, "DP-001")
	require.NoError(t, err)
	assert.Equal(t, "Raj Kumar", p.Name)

	p, err = repo.GetByID(ctx, "DP-404")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(kvstore.NewMemoryStore())

	tree, err := repo.GetTree(ctx)
	require.NoError(t, err)
	assert.Len(t, tree, len(entity.MainCategories))
	assert.Equal(t, []string{}, tree["Steam"])

	tree["Steam"] = []string{"Suit"}
	tree["Unknown"] = []string{"x"}
	require.NoError(t, repo.SaveTree(ctx, tree))

	tree, err = repo.GetTree(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Suit"}, tree["Steam"])
	assert.NotContains(t, tree, "Unknown")

	prices, err := repo.GetPrices(ctx)
	require.NoError(t, err)
	assert.Empty(t, prices)

	require.NoError(t, repo.SavePrices(ctx, entity.PriceMap{"Suit": 150}))
	prices, err = repo.GetPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 150.0, prices["Suit"])
}

func TestStatsRepository(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewStatsRepository(store)

	stats, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Stats{}, stats)

	require.NoError(t, store.Set(ctx, domainRepo.KeyStats, []byte("garbage")))
	stats, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Stats{}, stats)

	want := entity.Stats{TotalCustomers: 156, PendingPayments: 44}
	require.NoError(t, repo.Save(ctx, want))
	stats, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, stats)
}

func TestIdempotencyRepository(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewIdempotencyRepository(store)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	rec, err := repo.GetByKey(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, rec)

	require.NoError(t, repo.Create(ctx, &entity.IdempotencyRecord{
		Key: "old", Endpoint: "POST /bills", ResponseCode: 201, ExpiresAt: now.Add(-time.Minute),
	}))
	require.NoError(t, repo.Create(ctx, &entity.IdempotencyRecord{
		Key: "fresh", Endpoint: "POST /bills", ResponseCode: 201, ExpiresAt: now.Add(time.Hour),
	}))
	require.NoError(t, store.Set(ctx, domainRepo.IdempotencyKeyPrefix+"broken", []byte("{")))
	require.NoError(t, store.Set(ctx, domainRepo.KeyCustomers, []byte("[]")))

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	rec, err = repo.GetByKey(ctx, "fresh")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 201, rec.ResponseCode)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{domainRepo.IdempotencyKeyPrefix + "fresh", domainRepo.KeyCustomers}, keys)
}
