// Package bootstrap wires configuration, storage, services and HTTP routing
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/pravartak/mentorhub/internal/app/controllers"
	appMigrations "github.com/pravartak/mentorhub/internal/app/migrations"
	appRepos "github.com/pravartak/mentorhub/internal/app/repositories"
	appRoutes "github.com/pravartak/mentorhub/internal/app/routes"
	appServices "github.com/pravartak/mentorhub/internal/app/services"
	"github.com/pravartak/mentorhub/internal/config"
	"github.com/pravartak/mentorhub/internal/db"
	appMiddleware "github.com/pravartak/mentorhub/internal/middleware"
	"github.com/pravartak/mentorhub/internal/ml"
	pkgAuth "github.com/pravartak/mentorhub/internal/pkg/auth"
	"github.com/pravartak/mentorhub/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      appServices.AuthService
	RosterService    appServices.RosterService
	RiskService      appServices.RiskService
	AuthController   *appControllers.AuthController
	RosterController *appControllers.RosterController
	RiskController   *appControllers.RiskController
	HealthController *appControllers.HealthController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Repos            *appRepos.Repositories
	JWTService       *pkgAuth.JWTService
	Logger           zerolog.Logger
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

// SetupDatabase establishes the database connection and ensures the schema.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Ensuring database schema...")
	bootstrapper := appMigrations.NewBootstrapper(dbPool, lgr)
	if err := bootstrapper.EnsureSchema(context.Background()); err != nil {
		lgr.Error().Err(err).Msg("Schema bootstrap error")
		dbPool.Close()
		return nil, fmt.Errorf("schema bootstrap failed: %w", err)
	}
	lgr.Info().Msg("Database schema ready.")

	return dbPool, nil
}

// SetupClassifier probes the model-scoring service. A probe failure is not
// fatal: the service starts with prediction endpoints disabled and roster
// endpoints fully functional.
func SetupClassifier(cfg *config.Config, lgr zerolog.Logger) (ml.Classifier, string) {
	client := ml.NewClient(ml.ClientConfig{
		BaseURL: cfg.Model.ScorerURL,
		Timeout: cfg.ModelTimeout(),
		Logger:  lgr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ModelTimeout())
	defer cancel()

	info, err := client.Info(ctx)
	if err != nil {
		lgr.Warn().Err(err).Str("scorerURL", cfg.Model.ScorerURL).
			Msg("Model scorer unreachable, prediction endpoints disabled")
		return nil, ""
	}

	lgr.Info().Str("model", info.ModelName).Str("scorerURL", cfg.Model.ScorerURL).
		Msg("Model scorer available")
	return client, info.ModelName
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, classifier ml.Classifier, modelName string, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		accessTokenExp = 1 * time.Hour
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.MentorRepository,
		deps.Repos.StudentRepository,
		deps.JWTService,
		lgr,
	)

	deps.RosterService, err = appServices.NewRosterService(
		deps.Repos.MentorRepository,
		deps.Repos.StudentRepository,
		cfg.Auth.DefaultStudentPassword,
		lgr,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize roster service: %w", err)
	}

	deps.RiskService = appServices.NewRiskService(classifier, cfg.Model.ScorerURL, modelName, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.RosterController = appControllers.NewRosterController(deps.RosterService, lgr)
	deps.RiskController = appControllers.NewRiskController(deps.RiskService, lgr)
	deps.HealthController = appControllers.NewHealthController()

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.RosterController,
		deps.RiskController,
		deps.HealthController,
		deps.AuthMiddleware,
	)

	return router
}
