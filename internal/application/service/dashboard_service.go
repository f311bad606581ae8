package service

import (
	"context"
	"log"

	"github.com/sangkips/laundry-admin/internal/domain/entity"
	"github.com/sangkips/laundry-admin/internal/domain/enum"
	"github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/pkg/money"
)

// RecentLimit is how many orders and customers the dashboard lists
const RecentLimit = 5

// DashboardService provides dashboard statistics
type DashboardService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	billRepo     repository.MonthlyBillRepository
	statsRepo    repository.StatsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	billRepo repository.MonthlyBillRepository,
	statsRepo repository.StatsRepository,
) *DashboardService {
	return &DashboardService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		billRepo:     billRepo,
		statsRepo:    statsRepo,
	}
}

// DashboardSummary is the landing page payload
type DashboardSummary struct {
	Stats           entity.Stats      `json:"stats"`
	RecentOrders    []entity.Order    `json:"recentOrders"`
	RecentCustomers []entity.Customer `json:"recentCustomers"`
}

// readOrEmpty degrades a failed collection read to an empty one. The
// dashboard still renders when one collection is unreadable.
func readOrEmpty[T any](ctx context.Context, name string, list func(context.Context) ([]T, error)) []T {
	items, err := list(ctx)
	if err != nil {
		log.Printf("Warning: dashboard could not read %s: %v", name, err)
		return []T{}
	}
	return items
}

// ComputeStats derives the counters from a full scan of the collections
func ComputeStats(customers []entity.Customer, orders []entity.Order, bills []entity.MonthlyBill) entity.Stats {
	stats := entity.Stats{
		TotalCustomers: len(customers),
		TotalOrders:    len(orders),
	}
	for _, c := range customers {
		if c.MonthlyBilling.Enabled() {
			stats.MonthlyBillingCustomers++
		}
	}
	for _, o := range orders {
		stats.TotalClothes += len(o.Items)
		if o.Status == enum.OrderStatusDelivered {
			stats.DeliveredOrders++
		}
	}
	pending := make([]float64, 0, len(bills))
	for _, b := range bills {
		if b.Status.IsOutstanding() {
			pending = append(pending, b.TotalAmount)
		}
	}
	stats.PendingPayments = money.Sum(pending...)
	return stats
}

// GetDashboard computes the live stats and the recent lists
func (s *DashboardService) GetDashboard(ctx context.Context) *DashboardSummary {
	customers := readOrEmpty(ctx, "customers", s.customerRepo.List)
	orders := readOrEmpty(ctx, "orders", s.orderRepo.List)
	bills := readOrEmpty(ctx, "monthly bills", s.billRepo.List)

	return &DashboardSummary{
		Stats:           ComputeStats(customers, orders, bills),
		RecentOrders:    head(orders, RecentLimit),
		RecentCustomers: head(customers, RecentLimit),
	}
}

// GetStoredStats returns the counters object kept in the store
func (s *DashboardService) GetStoredStats(ctx context.Context) (entity.Stats, error) {
	stats, err := s.statsRepo.Get(ctx)
	if err != nil {
		return entity.Stats{}, storageError("read", err)
	}
	return stats, nil
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	return append([]T{}, items...)
}
