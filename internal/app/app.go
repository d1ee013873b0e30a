package app

import (
	"errors"
	"fmt"

	"brandmatch_backend/database"
	"brandmatch_backend/internal/config"
	"brandmatch_backend/internal/email"
	"brandmatch_backend/internal/handlers"
	"brandmatch_backend/internal/logger"
	"brandmatch_backend/internal/middleware"
	"brandmatch_backend/internal/models"
	"brandmatch_backend/internal/repositories"
	"brandmatch_backend/internal/routes"
	"brandmatch_backend/internal/services"
	"brandmatch_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	// TranslateError is required so the unique-index violation on
	// applications surfaces as gorm.ErrDuplicatedKey.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err := emailProvider.Validate(); err != nil {
			logger.Fatal("Invalid SMTP configuration", "error", err)
		}
	} else {
		logger.Warn("Email delivery disabled, using mock provider")
		emailProvider = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	campaignRepo := repositories.NewCampaignRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	messageRepo := repositories.NewMessageRepository(gormDB)
	payoutRepo := repositories.NewPayoutRepository(gormDB)

	return services.NewServiceContainer(
		userRepo,
		campaignRepo,
		applicationRepo,
		messageRepo,
		payoutRepo,
		emailProvider,
	)
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, container.UserService)
	jwtSecret := cfg.Auth.JWTSecret

	return &handlers.AppHandlers{
		UserHandler:        handlers.NewUserHandler(baseHandler, container.UserService, jwtSecret),
		CampaignHandler:    handlers.NewCampaignHandler(baseHandler, container.CampaignService, jwtSecret),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService, jwtSecret),
		MessageHandler:     handlers.NewMessageHandler(baseHandler, container.MessageService, jwtSecret),
		PayoutHandler:      handlers.NewPayoutHandler(baseHandler, container.PayoutService, jwtSecret, cfg.Payments.WebhookSecret),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin promotes the configured identity-provider subject to ADMIN.
// The user must have synced at least once; until then this is a no-op.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	externalID := cfg.FirstAdminExternalID
	if externalID == "" {
		return nil
	}

	var admin models.User
	err := db.Where("external_id = ?", externalID).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Warn("First admin subject has not synced yet, skipping promotion",
			"external_id", externalID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up first admin: %w", err)
	}

	if admin.Role == models.UserRoleAdmin {
		return nil
	}
	if err := db.Model(&admin).Update("role", models.UserRoleAdmin).Error; err != nil {
		return fmt.Errorf("failed to promote first admin: %w", err)
	}
	logger.Info("Promoted first admin", "user_id", admin.ID)
	return nil
}
