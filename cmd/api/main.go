package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sangkips/laundry-admin/internal/application/service"
	"github.com/sangkips/laundry-admin/internal/config"
	"github.com/sangkips/laundry-admin/internal/domain/enum"
	"github.com/sangkips/laundry-admin/internal/infrastructure/database"
	"github.com/sangkips/laundry-admin/internal/infrastructure/kvstore"
	"github.com/sangkips/laundry-admin/internal/infrastructure/repository"
	"github.com/sangkips/laundry-admin/internal/presentation/http/handler"
	"github.com/sangkips/laundry-admin/internal/presentation/http/middleware"
	"github.com/sangkips/laundry-admin/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Open the key-value store
	rawStore, closeStore, err := database.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("Warning: closing store: %v", err)
		}
	}()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storeOps := kvstore.NewOperationCounter()
	registry.MustRegister(storeOps)
	store := kvstore.Instrument(rawStore, storeOps)

	// Seed the demo dataset into missing keys
	if cfg.App.SeedOnStart {
		if err := database.Seed(ctx, store); err != nil {
			log.Printf("Warning: Failed to seed demo data: %v", err)
		}
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	billRepo := repository.NewMonthlyBillRepository(store)
	personRepo := repository.NewDeliveryPersonRepository(store)
	categoryRepo := repository.NewCategoryRepository(store)
	statsRepo := repository.NewStatsRepository(store)
	idempotencyRepo := repository.NewIdempotencyRepository(store)

	// Initialize services
	customerService := service.NewCustomerService(customerRepo, orderRepo, billRepo)
	orderService := service.NewOrderService(orderRepo, enum.NewTransitionPolicy(cfg.Billing.StrictOrderTransitions))
	billService := service.NewBillService(billRepo, customerRepo, orderRepo, service.BillServiceConfig{
		DueAfter: cfg.Billing.DueAfter,
	})
	categoryService := service.NewCategoryService(categoryRepo)
	deliveryService := service.NewDeliveryPersonService(personRepo)
	dashboardService := service.NewDashboardService(customerRepo, orderRepo, billRepo, statsRepo)
	adminService := service.NewAdminService(store, idempotencyRepo, database.Reset, time.Now)

	if cfg.Idempotency.PurgeInterval > 0 {
		go purgeIdempotency(ctx, adminService, cfg.Idempotency.PurgeInterval)
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Customer:       handler.NewCustomerHandler(customerService),
		Order:          handler.NewOrderHandler(orderService),
		Bill:           handler.NewBillHandler(billService),
		Category:       handler.NewCategoryHandler(categoryService),
		DeliveryPerson: handler.NewDeliveryPersonHandler(deliveryService),
		Dashboard:      handler.NewDashboardHandler(dashboardService),
		Admin:          handler.NewAdminHandler(adminService),
	}

	rateLimiter := middleware.NewIPRateLimiter(
		middleware.RateLimiterConfigFor(cfg.RateLimit.Requests, cfg.RateLimit.Duration),
	)
	defer rateLimiter.Stop()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Registry:        registry,
		RateLimiter:     rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s, store: %s", cfg.App.Env, cfg.Store.Driver)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func purgeIdempotency(ctx context.Context, admin *service.AdminService, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := admin.PurgeIdempotency(ctx)
			if err != nil {
				log.Printf("Warning: purging idempotency records: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("Purged %d expired idempotency records", removed)
			}
		}
	}
}
