package repository

import (
	"context"
	"log"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/internal/infrastructure/kvstore"
)

type statsRepository struct {
	store domainRepo.KeyValueStore
}

// NewStatsRepository creates a repository for the stored counters object
func NewStatsRepository(store domainRepo.KeyValueStore) domainRepo.StatsRepository {
	return &statsRepository{store: store}
}

// Get returns zero-valued stats when the key is absent or unreadable
func (r *statsRepository) Get(ctx context.Context) (entity.Stats, error) {
	var stats entity.Stats
	_, err := kvstore.GetJSON(ctx, r.store, domainRepo.KeyStats, &stats)
	if kvstore.IsCorrupt(err) {
		log.Printf("Warning: ignoring unreadable stats: %v", err)
		return entity.Stats{}, nil
	}
	if err != nil {
		return entity.Stats{}, err
	}
	return stats, nil
}

func (r *statsRepository) Save(ctx context.Context, stats entity.Stats) error {
	return kvstore.SetJSON(ctx, r.store, domainRepo.KeyStats, stats)
}
