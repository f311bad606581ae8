package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sangkips/laundry-admin/internal/domain/repository"
)

// GetJSON reads key and decodes it into dest. found is false when the key is
// absent; a value that does not decode yields a *CorruptValueError.
func GetJSON(ctx context.Context, store repository.KeyValueStore, key string, dest any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	// A stored JSON null reads the same as an absent key.
	if len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, &CorruptValueError{Key: key, Err: err}
	}
	return true, nil
}

// SetJSON encodes value and writes it under key
func SetJSON(ctx context.Context, store repository.KeyValueStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Exists reports whether key holds a non-null value
func Exists(ctx context.Context, store repository.KeyValueStore, key string) (bool, error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return len(raw) > 0 && string(raw) != "null", nil
}
