package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"civicfix_backend/internal/auth"
	"civicfix_backend/internal/config"
	"civicfix_backend/internal/handlers"
	"civicfix_backend/internal/logger"
	"civicfix_backend/internal/middleware"
	"civicfix_backend/internal/models"
	"civicfix_backend/internal/repositories"
	"civicfix_backend/internal/routes"
	"civicfix_backend/internal/services"
	"civicfix_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	// TranslateError включен: нарушения уникальных индексов приходят
	// как gorm.ErrDuplicatedKey, на этом построена защита от двойного
	// голосования
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return gormDB, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Request{},
		&models.Notification{},
		&models.Poll{},
		&models.PollVote{},
		&models.FeedbackItem{},
		&models.FeedbackVote{},
		&models.SystemSetting{},
		&models.MapMarker{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(gormDB)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	requestRepo := repositories.NewRequestRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	pollRepo := repositories.NewPollRepository(gormDB)
	feedbackRepo := repositories.NewFeedbackRepository(gormDB)
	settingsRepo := repositories.NewSettingsRepository(gormDB)
	markerRepo := repositories.NewMarkerRepository(gormDB)

	settingsService := services.NewSettingsService(settingsRepo)
	notificationService := services.NewNotificationService(notificationRepo, settingsService)

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo),
		RequestService:      services.NewRequestService(requestRepo, notificationService),
		NotificationService: notificationService,
		PollService:         services.NewPollService(pollRepo),
		FeedbackService:     services.NewFeedbackService(feedbackRepo),
		SettingsService:     settingsService,
		MarkerService:       services.NewMarkerService(markerRepo),
		AnalyticsService:    services.NewAnalyticsService(userRepo, requestRepo),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg))
	return router
}

// seedFirstAdmin создает администратора при первом запуске, если его
// еще нет. Без админа порталом невозможно управлять.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", adminEmail).First(&existing).Error
	if err == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		FullName:     "Portal Administrator",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
