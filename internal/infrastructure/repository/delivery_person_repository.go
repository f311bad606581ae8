package repository

import (
	"context"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
)

type deliveryPersonRepository struct {
	persons *collection[entity.DeliveryPerson]
}

// NewDeliveryPersonRepository creates a read-only delivery person repository
func NewDeliveryPersonRepository(store domainRepo.KeyValueStore) domainRepo.DeliveryPersonRepository {
	return &deliveryPersonRepository{persons: newCollection[entity.DeliveryPerson](store, domainRepo.KeyDeliveryPersons)}
}

func (r *deliveryPersonRepository) List(ctx context.Context) ([]entity.DeliveryPerson, error) {
	return r.persons.load(ctx)
}

func (r *deliveryPersonRepository) GetByID(ctx context.Context, id string) (*entity.DeliveryPerson, error) {
	persons, err := r.persons.load(ctx)
	if err != nil {
		return nil, err
	}
	return find(persons, func(p *entity.DeliveryPerson) bool { return p.ID == id }), nil
}
