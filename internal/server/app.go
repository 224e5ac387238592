// Package server assembles the careerpath backend: it opens PostgreSQL,
// applies migrations, builds the services and runs the HTTP API until an
// OS signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/careerpath/internal/logging"
	"github.com/dmitrijs2005/careerpath/internal/server/config"
	"github.com/dmitrijs2005/careerpath/internal/server/httpapi"
	"github.com/dmitrijs2005/careerpath/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/careerpath/internal/server/services"
)

// Seams for tests.
var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newRepositoryManager = func() repomanager.RepositoryManager {
		return repomanager.NewPostgresRepositoryManager()
	}
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	gin.SetMode(gin.ReleaseMode)

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	router, err := httpapi.NewRouter(httpapi.RouterConfig{
		Users:          services.NewUserService(db, rm),
		Career:         services.NewCareerService(db, rm),
		Logger:         logger,
		Metrics:        httpapi.NewMetrics(),
		AllowedOrigins: c.AllowedOrigins,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config: c,
		logger: logger,
		db:     db,
		server: httpapi.NewServer(c.EndpointAddr, c.ShutdownTimeout, logger, router),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until a signal arrives or the server fails, then closes the
// database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	err := app.server.Run(ctx)

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "db close error", "error", cerr)
	}
	return err
}
