package repository

import (
	"context"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/internal/infrastructure/kvstore"
)

type categoryRepository struct {
	store domainRepo.KeyValueStore
}

// NewCategoryRepository creates a repository over the category tree and price map
func NewCategoryRepository(store domainRepo.KeyValueStore) domainRepo.CategoryRepository {
	return &categoryRepository{store: store}
}

// GetTree always returns every main category, even when nothing is stored
func (r *categoryRepository) GetTree(ctx context.Context) (entity.CategoryTree, error) {
	var tree entity.CategoryTree
	if _, err := kvstore.GetJSON(ctx, r.store, domainRepo.KeyCategories, &tree); err != nil {
		return nil, err
	}
	return tree.Normalize(), nil
}

func (r *categoryRepository) SaveTree(ctx context.Context, tree entity.CategoryTree) error {
	return kvstore.SetJSON(ctx, r.store, domainRepo.KeyCategories, tree.Normalize())
}

func (r *categoryRepository) GetPrices(ctx context.Context) (entity.PriceMap, error) {
	prices := entity.PriceMap{}
	if _, err := kvstore.GetJSON(ctx, r.store, domainRepo.KeyCategoryPrices, &prices); err != nil {
		return nil, err
	}
	if prices == nil {
		prices = entity.PriceMap{}
	}
	return prices, nil
}

func (r *categoryRepository) SavePrices(ctx context.Context, prices entity.PriceMap) error {
	if prices == nil {
		prices = entity.PriceMap{}
	}
	return kvstore.SetJSON(ctx, r.store, domainRepo.KeyCategoryPrices, prices)
}
