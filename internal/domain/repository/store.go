package repository

import (
	"context"
	"errors"
)

// Storage keys of the persisted collections
const (
	KeyCustomers       = "laundryCustomers"
	KeyOrders          = "laundryOrders"
	KeyDeliveryPersons = "laundryDeliveryPersons"
	KeyMonthlyBills    = "laundryMonthlyBills"
	KeyCategories      = "laundryCategories"
	KeyCategoryPrices  = "laundryCategoryPrices"
	KeyStats           = "laundryStats"
	KeySchemaVersion   = "laundrySchemaVersion"

	// IdempotencyKeyPrefix namespaces stored idempotency records
	IdempotencyKeyPrefix = "idempotency:"
)

// KeyValueStore is a flat map from string key to JSON document.
// Get returns kvstore.ErrNotFound for absent keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Keys(ctx context.Context) ([]string, error)
}

var (
	// ErrRecordNotFound is returned by updates that target a missing record
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a create would reuse an existing ID
	ErrDuplicateKey = errors.New("duplicate key")
)
