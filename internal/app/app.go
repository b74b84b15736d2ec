package app

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"changaya_backend/database"
	"changaya_backend/internal/auth"
	"changaya_backend/internal/config"
	"changaya_backend/internal/handlers"
	"changaya_backend/internal/logger"
	"changaya_backend/internal/models"
	"changaya_backend/internal/pkg/cache"
	"changaya_backend/internal/pkg/email"
	"changaya_backend/internal/repositories"
	"changaya_backend/internal/routes"
	"changaya_backend/internal/services"
	"changaya_backend/internal/validator"
)

// Run wires the application together and starts the HTTP server.
func Run() error {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations applied")

	if err := seedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("failed to seed first admin: %w", err)
	}

	sessions := auth.NewSessionCodec(cfg.Auth.SessionSecret)
	verification := auth.NewVerificationCodec(cfg.Auth.VerificationSecret)

	sender := buildSender(cfg)

	var cacheClient cache.Client
	if cfg.Redis.Addr != "" {
		cacheClient = cache.NewRedisClient(cfg.Redis.Addr)
		logger.Info("rate limiting enabled", "redis_addr", cfg.Redis.Addr)
	} else {
		logger.Warn("REDIS_ADDR not set, credential rate limiting disabled")
	}

	svc := initializeServices(db, sessions, verification, sender, cfg)
	appHandlers := handlers.NewAppHandlers(svc)

	router := routes.SetupRouter(appHandlers, sessions, cacheClient)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr, "env", cfg.Server.Env)

	return router.Run(addr)
}

func initializeServices(
	db *gorm.DB,
	sessions *auth.SessionCodec,
	verification *auth.VerificationCodec,
	sender email.Sender,
	cfg *config.Config,
) *services.ServiceContainer {
	v := validator.New()

	userRepo := repositories.NewUserRepository(db)
	changaRepo := repositories.NewChangaRepository(db)

	return &services.ServiceContainer{
		Auth:    services.NewAuthService(userRepo, sessions, verification, sender, cfg.App.BaseURL, v),
		Users:   services.NewUserService(userRepo, v),
		Changas: services.NewChangaService(changaRepo, v),
	}
}

// buildSender returns the SMTP sender, or a log-only fallback when SMTP is
// unconfigured so development setups still work end to end.
func buildSender(cfg *config.Config) email.Sender {
	sender, err := email.NewSMTPSender(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("SMTP not configured, verification links will be logged instead", "error", err)
		return email.NewLogSender()
	}
	return sender
}

// seedFirstAdmin creates the configured admin account if it does not exist.
// Admin is not a self-registerable role; this is its only entry point.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Info("first admin not configured, skipping seed")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("email = ?", cfg.FirstAdminEmail).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := auth.HashPassword(cfg.FirstAdminPassword)
		if err != nil {
			return err
		}

		admin := &models.User{
			Username:     "admin",
			FirstName:    "Admin",
			LastName:     "ChangaYa",
			NationalID:   "0",
			Email:        cfg.FirstAdminEmail,
			Role:         models.UserRoleAdmin,
			PasswordHash: hash,
		}

		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		logger.Info("first admin seeded", "email", cfg.FirstAdminEmail)
		return nil
	})
}
