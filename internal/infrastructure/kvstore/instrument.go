package kvstore

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sangkips/laundry-admin/internal/domain/repository"
)

type instrumentedStore struct {
	next repository.KeyValueStore
	ops  *prometheus.CounterVec
}

// NewOperationCounter builds the counter used by Instrument
func NewOperationCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "laundry_store_operations_total",
		Help: "Key-value store operations by operation and result.",
	}, []string{"op", "result"})
}

// Instrument wraps store so every call is counted on ops. A Get of an absent
// key counts as "miss", not as an error.
func Instrument(store repository.KeyValueStore, ops *prometheus.CounterVec) repository.KeyValueStore {
	return &instrumentedStore{next: store, ops: ops}
}

func (s *instrumentedStore) observe(op string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, ErrNotFound):
		result = "miss"
	case err != nil:
		result = "error"
	}
	s.ops.WithLabelValues(op, result).Inc()
}

func (s *instrumentedStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.next.Get(ctx, key)
	s.observe("get", err)
	return v, err
}

func (s *instrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.next.Set(ctx, key, value)
	s.observe("set", err)
	return err
}

func (s *instrumentedStore) Remove(ctx context.Context, key string) error {
	err := s.next.Remove(ctx, key)
	s.observe("remove", err)
	return err
}

func (s *instrumentedStore) Clear(ctx context.Context) error {
	err := s.next.Clear(ctx)
	s.observe("clear", err)
	return err
}

func (s *instrumentedStore) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.next.Keys(ctx)
	s.observe("keys", err)
	return keys, err
}
