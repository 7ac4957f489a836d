package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/medipos/billing-api/internal/application/service"
	"github.com/medipos/billing-api/internal/config"
	"github.com/medipos/billing-api/internal/infrastructure/database"
	"github.com/medipos/billing-api/internal/infrastructure/repository"
	"github.com/medipos/billing-api/internal/presentation/http/handler"
	"github.com/medipos/billing-api/internal/presentation/http/routes"
	"github.com/medipos/billing-api/pkg/email"
	"github.com/medipos/billing-api/pkg/printer"
	"github.com/medipos/billing-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
		cfg.Printer.SpoolPath,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	orderService := service.NewOrderService(orderRepo)
	receiptService := service.NewReceiptService(thermalPrinter, orderRepo, emailService, cfg.Store, cfg.Printer)

	// Initialize handlers
	handlers := &routes.Handlers{
		Order:   handler.NewOrderHandler(orderService),
		Receipt: handler.NewReceiptHandler(receiptService),
		Printer: handler.NewPrinterHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
