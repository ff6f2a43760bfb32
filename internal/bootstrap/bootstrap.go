package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/medicamp/backend/internal/app/controllers"
	appMigrations "github.com/medicamp/backend/internal/app/migrations"
	appRepos "github.com/medicamp/backend/internal/app/repositories"
	appRoutes "github.com/medicamp/backend/internal/app/routes"
	appServices "github.com/medicamp/backend/internal/app/services"
	"github.com/medicamp/backend/internal/config"
	"github.com/medicamp/backend/internal/db"
	appMiddleware "github.com/medicamp/backend/internal/middleware"
	pkgAuth "github.com/medicamp/backend/internal/pkg/auth"
	"github.com/medicamp/backend/internal/pkg/logger"
	"github.com/medicamp/backend/internal/pkg/metrics"
	"github.com/medicamp/backend/internal/pkg/payment"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	UserService            *appServices.UserService
	CampService            *appServices.CampService
	RegistrationService    *appServices.RegistrationService
	PaymentService         *appServices.PaymentService
	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	CampController         *appControllers.CampController
	RegistrationController *appControllers.RegistrationController
	PaymentController      *appControllers.PaymentController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access token expiration: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	stripeClient := payment.NewStripeClient(cfg.Stripe.SecretKey, cfg.Stripe.Currency)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.CampService = appServices.NewCampService(deps.Repos.CampRepository)
	deps.RegistrationService = appServices.NewRegistrationService(
		database,
		deps.Repos.RegistrationRepository,
		deps.Repos.CampRepository,
		lgr,
	)
	deps.PaymentService = appServices.NewPaymentService(stripeClient, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.CampController = appControllers.NewCampController(deps.CampService)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService)
	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(metrics.RequestCounter())

	// Prometheus scrape endpoint
	router.GET("/metrics", metrics.Handler())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CampController,
		deps.RegistrationController,
		deps.PaymentController,
		deps.AuthMiddleware,
	)

	return router
}
