package main

import (
	"fmt"

	"cfcs/internal/auth"
	"cfcs/internal/config"
	"cfcs/internal/database"
	"cfcs/internal/ledger"
	"cfcs/internal/logger"
	"cfcs/internal/middleware"
	"cfcs/internal/server"
	"cfcs/internal/services"
	"cfcs/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @title           CFCS API
// @version         1.0
// @description     Church Financial Record System: record income and expenses, report on them and share read-only snapshots.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.InitWithLevel(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		if appConfig.UsesDefaultSecret() {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if appConfig.UsesDefaultCredentials() {
			return fmt.Errorf("ADMIN_PASSWORD and VIEWER_PASSWORD (or their _HASH variants) must be set in production")
		}
	} else {
		if appConfig.UsesDefaultSecret() {
			log.Warn("Using the development JWT secret; set JWT_SECRET before deploying")
		}
		if appConfig.UsesDefaultCredentials() {
			log.Warn("Using the development account passwords; set ADMIN_PASSWORD and VIEWER_PASSWORD before deploying")
		}
	}
	validator.Register()

	// Optional storage
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	var (
		db        *gorm.DB
		persister services.Persister = services.NopPersister{}
	)
	if dbConfig.Enabled() {
		dbManager, err := database.NewManager(dbConfig)
		if err != nil {
			return fmt.Errorf("failed to create database manager: %w", err)
		}
		defer func() {
			if err := dbManager.Close(); err != nil {
				log.Warnf("database close error: %v", err)
			}
		}()
		if err := dbManager.RunMigrations(); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
		db = dbManager.DB()
		persister = database.NewTransactionStore(db)
		log.Infow("Storage enabled", "driver", dbConfig.Driver)
	} else {
		log.Info("Storage disabled; records live only for this session")
	}

	// Initialize services
	provider, err := auth.FromConfig(appConfig)
	if err != nil {
		return fmt.Errorf("invalid credentials configuration: %w", err)
	}

	transactionService := services.NewTransactionService(ledger.NewStore(), persister)
	restored, err := transactionService.Restore()
	if err != nil {
		return fmt.Errorf("failed to restore ledger: %w", err)
	}
	if restored > 0 {
		log.Infof("Restored %d transaction(s)", restored)
	}

	viewerService, err := services.NewViewerService(transactionService, services.ViewerConfig{
		ViewerURL:     appConfig.ViewerURL,
		DefaultTarget: appConfig.ShareTarget,
	})
	if err != nil {
		return fmt.Errorf("invalid SHARE_TARGET: %w", err)
	}

	if appConfig.ExportAPIKey == "" {
		log.Info("EXPORT_API_KEY not set; /api/v1/export is disabled")
	}

	router := server.NewRouter(server.Deps{
		Auth:         services.NewAuthService(provider),
		Categories:   services.NewCategoryService(),
		Transactions: transactionService,
		Reports:      services.NewReportService(transactionService, nil),
		Viewer:       viewerService,
		Audit:        services.NewAuditService(db),
		Tokens:       middleware.NewTokenManager(appConfig.JWTSecret, appConfig.JWTExpirationDur),
		ExportAPIKey: appConfig.ExportAPIKey,
	})

	log.Infof("Starting CFCS server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
