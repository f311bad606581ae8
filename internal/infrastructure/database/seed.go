package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/internal/infrastructure/kvstore"
)

// SchemaVersion is written under laundrySchemaVersion by Seed
const SchemaVersion = 1

type seedEntry struct {
	key   string
	value func() any
}

func seedEntries() []seedEntry {
	return []seedEntry{
		{domainRepo.KeyCustomers, func() any { return demoCustomers() }},
		{domainRepo.KeyOrders, func() any { return demoOrders() }},
		{domainRepo.KeyDeliveryPersons, func() any { return demoDeliveryPersons() }},
		{domainRepo.KeyMonthlyBills, func() any { return demoMonthlyBills() }},
		{domainRepo.KeyCategories, func() any { return demoCategories() }},
		{domainRepo.KeyCategoryPrices, func() any { return demoCategoryPrices() }},
		{domainRepo.KeyStats, func() any { return demoStats() }},
		{domainRepo.KeySchemaVersion, func() any { return SchemaVersion }},
	}
}

// Seed writes the demo dataset under every key that holds nothing yet.
// Existing values are never overwritten, including unreadable ones.
func Seed(ctx context.Context, store domainRepo.KeyValueStore) error {
	seeded := 0
	for _, e := range seedEntries() {
		raw, err := store.Get(ctx, e.key)
		switch {
		case errors.Is(err, kvstore.ErrNotFound):
		case err != nil:
			return fmt.Errorf("failed to check %s: %w", e.key, err)
		case string(raw) == "null" || len(raw) == 0:
		case !json.Valid(raw):
			log.Printf("Warning: %s holds unreadable data, leaving it untouched", e.key)
			continue
		default:
			continue
		}

		if err := kvstore.SetJSON(ctx, store, e.key, e.value()); err != nil {
			return fmt.Errorf("failed to seed %s: %w", e.key, err)
		}
		seeded++
	}

	if seeded > 0 {
		log.Printf("Seeded %d collections with demo data", seeded)
	}
	return nil
}

// Reset wipes the store and seeds it again
func Reset(ctx context.Context, store domainRepo.KeyValueStore) error {
	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	log.Println("Store cleared, re-seeding demo data")
	return Seed(ctx, store)
}
