package service

import (
	"context"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	"github.com/sangkips/laundry-admin/internal/domain/enum"
	"github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/pkg/apperror"
)

// DeliveryPersonService exposes the delivery staff records read-only
type DeliveryPersonService struct {
	personRepo repository.DeliveryPersonRepository
}

// NewDeliveryPersonService creates a new delivery person service
func NewDeliveryPersonService(personRepo repository.DeliveryPersonRepository) *DeliveryPersonService {
	return &DeliveryPersonService{personRepo: personRepo}
}

// DeliveryTotals sums the counters across all delivery persons
type DeliveryTotals struct {
	Persons      int `json:"persons"`
	Active       int `json:"active"`
	TotalOrders  int `json:"totalOrders"`
	TotalClothes int `json:"totalClothes"`
}

// ListDeliveryPersons searches name, mobile and ID
func (s *DeliveryPersonService) ListDeliveryPersons(ctx context.Context, search string) ([]entity.DeliveryPerson, error) {
	persons, err := s.personRepo.List(ctx)
	if err != nil {
		return nil, storageError("read", err)
	}

	out := make([]entity.DeliveryPerson, 0, len(persons))
	for _, p := range persons {
		if matchesFold(search, p.Name, p.Mobile, p.ID) {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetDeliveryPerson retrieves a delivery person by ID
func (s *DeliveryPersonService) GetDeliveryPerson(ctx context.Context, id string) (*entity.DeliveryPerson, error) {
	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("read", err)
	}
	if person == nil {
		return nil, apperror.NewNotFoundError("Delivery person")
	}
	return person, nil
}

// Totals sums orders and clothes over every delivery person
func (s *DeliveryPersonService) Totals(ctx context.Context) (*DeliveryTotals, error) {
	persons, err := s.personRepo.List(ctx)
	if err != nil {
		return nil, storageError("read", err)
	}

	totals := &DeliveryTotals{Persons: len(persons)}
	for _, p := range persons {
		totals.TotalOrders += p.TotalOrders
		totals.TotalClothes += p.TotalClothes
		if p.Status == enum.PersonStatusActive {
			totals.Active++
		}
	}
	return totals, nil
}
