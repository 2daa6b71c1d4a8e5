package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"merchstore/internal/cart"
	"merchstore/internal/catalog"
	"merchstore/internal/config"
	"merchstore/internal/events"
	httpapi "merchstore/internal/http"
	"merchstore/internal/logging"
	"merchstore/internal/repository"
	"merchstore/internal/service"

	_ "merchstore/docs"
)

// @title Merch Store API
// @version 1.0
// @description Cart, student discount and checkout for the campus merch store.
// @BasePath /api/v1
func main() {
	app := &cli.App{
		Name:   "merchstore",
		Usage:  "serve the merch store cart API",
		Flags:  config.Flags(),
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	products, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", zap.Int("products", len(products.List())), zap.String("path", cfg.CatalogPath))

	publisher, closePublisher, err := newPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	store := repository.NewMemoryStore()
	receipts := repository.NewMemoryReceipts(store)
	engine := cart.NewEngine(products, logger)

	productsSvc := service.NewProductService(engine.Catalog())
	cartsSvc := service.NewCartService(engine, store, receipts, publisher, logger)

	srv := httpapi.NewServer(productsSvc, cartsSvc, logger)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}

func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

// newPublisher returns a no-op publisher when no broker is configured.
func newPublisher(cfg *config.Config, logger *zap.Logger) (events.Publisher, func(), error) {
	if cfg.RabbitMQURL == "" {
		logger.Info("receipt publishing disabled")
		return events.NopPublisher{}, func() {}, nil
	}
	pool, err := events.NewChannelPool(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.ChannelPoolSize, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq: %w", err)
	}
	return events.NewAMQPPublisher(pool, cfg.RabbitMQQueue, logger), pool.Close, nil
}
