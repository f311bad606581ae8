package repository

import (
	"context"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
)

type orderRepository struct {
	orders *collection[entity.Order]
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(store domainRepo.KeyValueStore) domainRepo.OrderRepository {
	return &orderRepository{orders: newCollection[entity.Order](store, domainRepo.KeyOrders)}
}

func (r *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	return r.orders.load(ctx)
}

func (r *orderRepository) GetByID(ctx context.Context, orderID string) (*entity.Order, error) {
	orders, err := r.orders.load(ctx)
	if err != nil {
		return nil, err
	}
	return find(orders, func(o *entity.Order) bool { return o.OrderID == orderID }), nil
}

// Update replaces the stored order with the same OrderID. Items are never
// rewritten by the admin, so the whole record is swapped as-is.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.orders.mutate(ctx, func(orders []entity.Order) ([]entity.Order, error) {
		return replace(orders, *order, func(o *entity.Order) bool { return o.OrderID == order.OrderID })
	})
}

func (r *orderRepository) SaveAll(ctx context.Context, orders []entity.Order) error {
	return r.orders.replaceAll(ctx, orders)
}
