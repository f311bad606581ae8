package service

import (
	"context"
	"log"

	"github.com/sangkips/laundry-admin/internal/domain/repository"
)

// Seeder rewrites the demo dataset into a store
type Seeder func(ctx context.Context, store repository.KeyValueStore) error

// AdminService holds maintenance operations on the whole store
type AdminService struct {
	store           repository.KeyValueStore
	idempotencyRepo repository.IdempotencyRepository
	reset           Seeder
	now             Clock
}

// NewAdminService creates a new admin service. reset is normally
// database.Reset.
func NewAdminService(store repository.KeyValueStore, idempotencyRepo repository.IdempotencyRepository, reset Seeder, now Clock) *AdminService {
	return &AdminService{
		store:           store,
		idempotencyRepo: idempotencyRepo,
		reset:           reset,
		now:             now.orDefault(),
	}
}

// ResetData clears every key and restores the demo dataset
func (s *AdminService) ResetData(ctx context.Context) error {
	if err := s.reset(ctx, s.store); err != nil {
		return storageError("reset", err)
	}
	log.Println("Store reset to demo data")
	return nil
}

// PurgeIdempotency removes expired idempotency records
func (s *AdminService) PurgeIdempotency(ctx context.Context) (int, error) {
	n, err := s.idempotencyRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		return n, storageError("purge", err)
	}
	return n, nil
}

// ListKeys returns every key currently in the store
func (s *AdminService) ListKeys(ctx context.Context) ([]string, error) {
	keys, err := s.store.Keys(ctx)
	if err != nil {
		return nil, storageError("read", err)
	}
	return keys, nil
}
