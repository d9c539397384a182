// Command formauth is the interactive terminal client for the login and
// registration forms.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/melusi-muna/login-register-forms/internal/buildinfo"
	"github.com/melusi-muna/login-register-forms/internal/cli"
	"github.com/melusi-muna/login-register-forms/internal/config"
	"github.com/melusi-muna/login-register-forms/internal/logging"
	"github.com/melusi-muna/login-register-forms/internal/metrics"
	"github.com/melusi-muna/login-register-forms/internal/services"
	"github.com/melusi-muna/login-register-forms/internal/storage/backends"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, closeLog := logging.New(logging.Options{
		Driver: cfg.LogDriver,
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Output: os.Stderr,
	})
	defer closeLog()

	store, closeStore, err := backends.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "storage init error", "error", err)
		return
	}
	defer closeStore()

	svc := services.NewFormService(store, cfg.RedirectDelay, metrics.New(), logger)
	if err := svc.Init(ctx); err != nil {
		logger.Error(ctx, "storage init error", "error", err)
		return
	}

	cli.NewApp(svc, logger, os.Stdin, os.Stdout).Run(ctx)
}
