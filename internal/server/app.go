// Package server initializes and runs formauthd: it opens the configured
// store, builds the form service and serves it over HTTP (fiber) and gRPC
// until a termination signal arrives.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/melusi-muna/login-register-forms/internal/config"
	"github.com/melusi-muna/login-register-forms/internal/logging"
	"github.com/melusi-muna/login-register-forms/internal/metrics"
	"github.com/melusi-muna/login-register-forms/internal/services"
	"github.com/melusi-muna/login-register-forms/internal/storage/backends"

	gs "github.com/melusi-muna/login-register-forms/internal/transport/grpc"
	hs "github.com/melusi-muna/login-register-forms/internal/transport/http"
)

const serviceName = "formauthd"

type App struct {
	config     *config.Config
	logger     logging.Logger
	closeLog   func() error
	closeStore func() error
	metrics    *metrics.Metrics
	forms      *services.FormService
	version    string
}

func NewApp(ctx context.Context, c *config.Config, version string) (*App, error) {
	logger, closeLog := logging.New(logging.Options{
		Driver: c.LogDriver,
		Level:  c.LogLevel,
		File:   c.LogFile,
	})

	store, closeStore, err := backends.Open(ctx, c, logger)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	m := metrics.New()
	svc := services.NewFormService(store, c.RedirectDelay, m, logger)
	if err := svc.Init(ctx); err != nil {
		_ = closeStore()
		_ = closeLog()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	return &App{
		config:     c,
		logger:     logger,
		closeLog:   closeLog,
		closeStore: closeStore,
		metrics:    m,
		forms:      svc,
		version:    version,
	}, nil
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.forms)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) newHTTPApp() *fiber.App {
	return hs.NewApp(hs.RouteConfig{
		Forms:   hs.NewFormsHandler(app.forms),
		Health:  hs.NewHealthHandler(serviceName, app.version),
		Metrics: app.metrics.Handler(),
	}, app.logger, 0)
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	ln, err := net.Listen("tcp", app.config.HTTPAddr)
	if err != nil {
		app.logger.Error(ctx, "http listen failed", "error", err)
		cancelFunc()
		return
	}
	app.serveHTTP(ctx, cancelFunc, ln)
}

func (app *App) serveHTTP(ctx context.Context, cancelFunc context.CancelFunc, ln net.Listener) {
	web := app.newHTTPApp()

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		_ = web.Shutdown()
		_ = ln.Close()
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())
	if err := web.Listener(ln); err != nil && !errors.Is(err, net.ErrClosed) {
		app.logger.Error(ctx, "http server failed", "error", err)
		cancelFunc()
	}
}

// Run serves HTTP and gRPC until ctx is cancelled, a signal arrives or one
// of the servers fails, then releases the store and the log file.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "backend", app.config.StorageBackend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.closeStore(); err != nil {
		app.logger.Error(context.Background(), "storage close failed", "error", err)
	}
	app.logger.Info(context.Background(), "Stopped")
	_ = app.closeLog()
}
