package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sangkips/laundry-admin/internal/config"
	domainRepo "github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/internal/presentation/http/handler"
	"github.com/sangkips/laundry-admin/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Customer       *handler.CustomerHandler
	Order          *handler.OrderHandler
	Bill           *handler.BillHandler
	Category       *handler.CategoryHandler
	DeliveryPerson *handler.DeliveryPersonHandler
	Dashboard      *handler.DashboardHandler
	Admin          *handler.AdminHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	// Registry receives the HTTP collectors and is served on /metrics
	Registry    *prometheus.Registry
	RateLimiter *middleware.IPRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.NewHTTPMetrics(deps.Registry).Middleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}
	v1.Use(middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
		TTL:  deps.Cfg.Idempotency.TTL,
	}))

	registerRoutes(v1, h)

	return router
}

func registerRoutes(rg *gin.RouterGroup, h *Handlers) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("", h.Dashboard.GetStats)
		dashboard.GET("/stored-stats", h.Dashboard.GetStoredStats)
	}

	customers := rg.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/counts", h.Customer.Counts)
		customers.GET("/:id", h.Customer.Get)
		customers.PATCH("/:id", h.Customer.Update)
		customers.GET("/:id/orders", h.Customer.Orders)
		customers.GET("/:id/bills", h.Customer.Bills)
		customers.POST("/:id/monthly-billing/toggle", h.Customer.ToggleMonthlyBilling)
		customers.PUT("/:id/monthly-billing", h.Customer.SetMonthlyBilling)
	}

	orders := rg.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/counts", h.Order.Counts)
		orders.GET("/statuses", h.Order.Statuses)
		orders.GET("/:id", h.Order.Get)
		orders.PATCH("/:id/status", h.Order.UpdateStatus)
	}

	bills := rg.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		bills.GET("/next-id", h.Bill.NextID)
		bills.POST("", h.Bill.Create)
		bills.POST("/generate", h.Bill.Generate)
		bills.GET("/:id", h.Bill.Get)
		bills.PATCH("/:id/status", h.Bill.UpdateStatus)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/prices/:name", h.Category.GetPrice)
		categories.GET("/:category/sub-categories", h.Category.Search)
		categories.POST("/:category/sub-categories", h.Category.AddSubCategory)
		categories.PUT("/:category/sub-categories/:name", h.Category.EditSubCategory)
		categories.DELETE("/:category/sub-categories/:name", h.Category.DeleteSubCategory)
	}

	delivery := rg.Group("/delivery-persons")
	{
		delivery.GET("", h.DeliveryPerson.List)
		delivery.GET("/totals", h.DeliveryPerson.Totals)
		delivery.GET("/:id", h.DeliveryPerson.Get)
	}

	admin := rg.Group("/admin")
	{
		admin.POST("/reset", h.Admin.Reset)
		admin.POST("/idempotency/purge", h.Admin.PurgeIdempotency)
		admin.GET("/keys", h.Admin.Keys)
	}
}
