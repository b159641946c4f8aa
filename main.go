package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"example.com/catalog-admin/internal/config"
	"example.com/catalog-admin/internal/infra/logging"
	"example.com/catalog-admin/internal/infra/remote"
	httpapi "example.com/catalog-admin/internal/interface/http"
	"example.com/catalog-admin/internal/interface/terminal"
	"example.com/catalog-admin/internal/usecase/catalog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// the console owns stdout in terminal mode
	logOut := os.Stdout
	if cfg.Mode == config.ModeTerminal {
		logOut = os.Stderr
	}
	logger := logging.New(cfg.LogLevel, logOut)
	logger.Infof("Starting catalog admin in %s mode", cfg.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := remote.NewClient(cfg.APIURL, cfg.HTTPTimeout, logger)
	logger.Infof("Catalog backend client initialized for target: %s", cfg.APIURL)

	svc := catalog.NewService(catalog.Dependencies{
		Products:   remote.NewProductRepository(client),
		Categories: remote.NewCategoryRepository(client),
		Logger:     logger,
	})
	if err := svc.Init(ctx); err != nil {
		logger.WithError(err).Warn("Initial product load failed, starting with an empty list")
	}

	switch cfg.Mode {
	case config.ModeTerminal:
		console := terminal.New(svc, os.Stdin, os.Stdout, logger)
		if err := console.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.WithError(err).Fatal("Console stopped")
		}
	default:
		serveHTTP(ctx, cfg.HTTPAddr, svc, logger)
	}
}

func serveHTTP(ctx context.Context, addr string, svc *catalog.Service, logger *logrus.Logger) {
	api := httpapi.NewAPI(httpapi.Dependencies{Catalog: svc, Logger: logger})
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatalf("Failed to start server on %s", addr)
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Graceful shutdown failed")
		}
	}
}
