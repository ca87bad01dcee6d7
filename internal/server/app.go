// Package server initializes and runs the application: it wires the
// configuration, the database-backed account store, the registration and
// login flows, and the HTTP endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avetisov/authsvc/internal/logging"
	"github.com/avetisov/authsvc/internal/server/accounts"
	"github.com/avetisov/authsvc/internal/server/config"
	"github.com/avetisov/authsvc/internal/server/httpapi"
	"github.com/avetisov/authsvc/internal/server/shared/db"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	accountService *accounts.Service
	dbManager      db.RepositoryManager
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	m, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	svc := accounts.NewService(m.Conn(), m.Accounts, logger)

	return &App{config: cfg, logger: logger, accountService: svc, dbManager: m}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.Address, app.logger, app.accountService,
		app.config.SecretKey, app.config.TokenValidityDuration)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.dbManager.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
