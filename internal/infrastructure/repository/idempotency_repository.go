package repository

import (
	"context"
	"strings"
	"time"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/internal/infrastructure/kvstore"
)

type idempotencyRepository struct {
	store domainRepo.KeyValueStore
}

// NewIdempotencyRepository creates a new idempotency repository. Each record
// lives under its own prefixed key.
func NewIdempotencyRepository(store domainRepo.KeyValueStore) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{store: store}
}

func idempotencyKey(key string) string {
	return domainRepo.IdempotencyKeyPrefix + key
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string) (*entity.IdempotencyRecord, error) {
	var record entity.IdempotencyRecord
	found, err := kvstore.GetJSON(ctx, r.store, idempotencyKey(key), &record)
	if err != nil || !found {
		return nil, err
	}
	return &record, nil
}

func (r *idempotencyRepository) Create(ctx context.Context, record *entity.IdempotencyRecord) error {
	return kvstore.SetJSON(ctx, r.store, idempotencyKey(record.Key), record)
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	keys, err := r.store.Keys(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, k := range keys {
		if !strings.HasPrefix(k, domainRepo.IdempotencyKeyPrefix) {
			continue
		}
		var record entity.IdempotencyRecord
		found, err := kvstore.GetJSON(ctx, r.store, k, &record)
		// unreadable records are dropped along with expired ones
		if err != nil && !kvstore.IsCorrupt(err) {
			return removed, err
		}
		if found && !record.IsExpired(now) {
			continue
		}
		if err := r.store.Remove(ctx, k); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
