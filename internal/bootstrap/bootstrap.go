// Package bootstrap assembles configuration, the database, and the
// application dependency graph.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rjoshi/counselport/internal/app/controllers"
	appMigrations "github.com/rjoshi/counselport/internal/app/migrations"
	appRepos "github.com/rjoshi/counselport/internal/app/repositories"
	appRoutes "github.com/rjoshi/counselport/internal/app/routes"
	appServices "github.com/rjoshi/counselport/internal/app/services"
	"github.com/rjoshi/counselport/internal/config"
	"github.com/rjoshi/counselport/internal/db"
	appMiddleware "github.com/rjoshi/counselport/internal/middleware"
	"github.com/rjoshi/counselport/internal/offer"
	"github.com/rjoshi/counselport/internal/pkg/filestorage"
	"github.com/rjoshi/counselport/internal/pkg/logger"
	"github.com/rjoshi/counselport/internal/seed"
	"github.com/rjoshi/counselport/internal/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	FileStorage       *filestorage.LocalStorage
	OfferGenerator    *offer.Generator
	Sessions          *session.Manager
	StudentService    *appServices.StudentService
	AdminService      *appServices.AdminService
	HomeController    *appControllers.HomeController
	StudentController *appControllers.StudentController
	AdminController   *appControllers.AdminController
	SessionMiddleware *appMiddleware.SessionMiddleware
	Logger            zerolog.Logger
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
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied.")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := seed.CreateDefaultAdmin(ctx, dbPool, cfg, lgr); err != nil {
		// Startup proceeds; an admin can still be created via /admin/signup
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.UploadDir, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.OfferGenerator = offer.NewGenerator(cfg.Server.OfferDir, lgr)

	sessionStore := session.NewMemoryStore(cfg.SessionTTL())
	deps.Sessions = session.NewManager(sessionStore, cfg.SessionTTL())

	deps.StudentService = appServices.NewStudentService(deps.Repos.Students, deps.FileStorage, lgr)
	deps.AdminService = appServices.NewAdminService(deps.Repos.Admins, deps.Repos.Students, deps.OfferGenerator, lgr)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.Sessions)

	deps.HomeController = appControllers.NewHomeController()
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.Sessions, deps.OfferGenerator, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, deps.Sessions, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.LoadHTMLGlob(filepath.Join("web", "templates", "*.html"))

	appRoutes.SetupRouter(router,
		deps.HomeController,
		deps.StudentController,
		deps.AdminController,
		deps.SessionMiddleware,
	)

	return router
}
