package repository

import (
	"context"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
)

type customerRepository struct {
	customers *collection[entity.Customer]
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(store domainRepo.KeyValueStore) domainRepo.CustomerRepository {
	return &customerRepository{customers: newCollection[entity.Customer](store, domainRepo.KeyCustomers)}
}

func (r *customerRepository) List(ctx context.Context) ([]entity.Customer, error) {
	return r.customers.load(ctx)
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	customers, err := r.customers.load(ctx)
	if err != nil {
		return nil, err
	}
	return find(customers, func(c *entity.Customer) bool { return c.ID == id }), nil
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.customers.mutate(ctx, func(customers []entity.Customer) ([]entity.Customer, error) {
		return replace(customers, *customer, func(c *entity.Customer) bool { return c.ID == customer.ID })
	})
}

func (r *customerRepository) Modify(ctx context.Context, id string, fn func(*entity.Customer) error) (*entity.Customer, error) {
	var updated entity.Customer
	err := r.customers.mutate(ctx, func(customers []entity.Customer) ([]entity.Customer, error) {
		for i := range customers {
			if customers[i].ID != id {
				continue
			}
			if err := fn(&customers[i]); err != nil {
				return nil, err
			}
			updated = customers[i]
			return customers, nil
		}
		return nil, domainRepo.ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *customerRepository) SaveAll(ctx context.Context, customers []entity.Customer) error {
	return r.customers.replaceAll(ctx, customers)
}
