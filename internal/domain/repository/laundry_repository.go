package repository

import (
	"context"
	"time"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	List(ctx context.Context) ([]entity.Customer, error)
	// GetByID returns nil, nil when the customer does not exist
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	// Modify applies fn to the stored customer and saves it in one
	// read-modify-write cycle. It returns ErrRecordNotFound for unknown ids.
	Modify(ctx context.Context, id string, fn func(*entity.Customer) error) (*entity.Customer, error)
	SaveAll(ctx context.Context, customers []entity.Customer) error
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	List(ctx context.Context) ([]entity.Order, error)
	GetByID(ctx context.Context, orderID string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	SaveAll(ctx context.Context, orders []entity.Order) error
}

// MonthlyBillRepository defines the interface for monthly bill data operations
type MonthlyBillRepository interface {
	List(ctx context.Context) ([]entity.MonthlyBill, error)
	GetByID(ctx context.Context, billID string) (*entity.MonthlyBill, error)
	Create(ctx context.Context, bill *entity.MonthlyBill) error
	Update(ctx context.Context, bill *entity.MonthlyBill) error
}

// DeliveryPersonRepository is read-only; records come from the delivery app
type DeliveryPersonRepository interface {
	List(ctx context.Context) ([]entity.DeliveryPerson, error)
	GetByID(ctx context.Context, id string) (*entity.DeliveryPerson, error)
}

// CategoryRepository stores the category tree and the sub-category price map
type CategoryRepository interface {
	GetTree(ctx context.Context) (entity.CategoryTree, error)
	SaveTree(ctx context.Context, tree entity.CategoryTree) error
	GetPrices(ctx context.Context) (entity.PriceMap, error)
	SavePrices(ctx context.Context, prices entity.PriceMap) error
}

// StatsRepository reads the stored counters object
type StatsRepository interface {
	// Get returns zero-valued stats when nothing is stored
	Get(ctx context.Context) (entity.Stats, error)
	Save(ctx context.Context, stats entity.Stats) error
}

// IdempotencyRepository defines the interface for idempotency record operations
type IdempotencyRepository interface {
	// GetByKey returns nil, nil when no record exists
	GetByKey(ctx context.Context, key string) (*entity.IdempotencyRecord, error)
	Create(ctx context.Context, record *entity.IdempotencyRecord) error
	// DeleteExpired removes records expired at now
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
