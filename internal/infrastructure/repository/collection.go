package repository

import (
	"context"
	"sync"

	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/internal/infrastructure/kvstore"
)

// collection is a JSON array stored under a single key. Writes go through
// mutate so read-modify-write cycles in this process do not interleave.
type collection[T any] struct {
	store domainRepo.KeyValueStore
	key   string
	mu    sync.Mutex
}

func newCollection[T any](store domainRepo.KeyValueStore, key string) *collection[T] {
	return &collection[T]{store: store, key: key}
}

// GetCollection reads the JSON array stored under key. An absent key yields
// an empty slice; a malformed value yields a *kvstore.CorruptValueError.
func GetCollection[T any](ctx context.Context, store domainRepo.KeyValueStore, key string) ([]T, error) {
	var items []T
	if _, err := kvstore.GetJSON(ctx, store, key, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveCollection writes items under key. A nil slice is stored as [].
func SaveCollection[T any](ctx context.Context, store domainRepo.KeyValueStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	return kvstore.SetJSON(ctx, store, key, items)
}

func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	return GetCollection[T](ctx, c.store, c.key)
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	return SaveCollection(ctx, c.store, c.key, items)
}

func (c *collection[T]) replaceAll(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, items)
}

// mutate loads the slice, applies fn and stores the result
func (c *collection[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.save(ctx, items)
}

// find returns a copy of the first element matching pred
func find[T any](items []T, pred func(*T) bool) *T {
	for i := range items {
		if pred(&items[i]) {
			found := items[i]
			return &found
		}
	}
	return nil
}

// replace swaps the first element matching pred for v
func replace[T any](items []T, v T, pred func(*T) bool) ([]T, error) {
	for i := range items {
		if pred(&items[i]) {
			items[i] = v
			return items, nil
		}
	}
	return nil, domainRepo.ErrRecordNotFound
}
