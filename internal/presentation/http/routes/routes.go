package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medipos/billing-api/internal/config"
	domainRepo "github.com/medipos/billing-api/internal/domain/repository"
	"github.com/medipos/billing-api/internal/presentation/http/handler"
	"github.com/medipos/billing-api/internal/presentation/http/middleware"
	"github.com/medipos/billing-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Order   *handler.OrderHandler
	Receipt *handler.ReceiptHandler
	Printer *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes, all behind terminal authentication
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(deps.JWTManager))

	// Per-terminal rate limiter
	rateLimiter := middleware.NewTerminalRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	v1.Use(rateLimiter.Middleware())

	registerOrderRoutes(v1, h, deps)
	registerPrinterRoutes(v1, h)

	// Invoice-number lookup, used when re-printing from a paper copy
	v1.GET("/invoices/:invoiceNo", h.Order.GetByInvoice)

	return router
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicate
		// checkouts from terminal retries
		orders.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.DELETE("/:id", h.Order.Delete)

		// Receipt rendering for a stored order
		orders.GET("/:id/receipt", h.Receipt.Preview)
		orders.GET("/:id/receipt/pdf", h.Receipt.PDF)
		orders.POST("/:id/receipt/print", h.Receipt.Print)
		orders.POST("/:id/receipt/email", h.Receipt.Email)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printerGroup := v1.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
