package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/seesamjagan/bakery-storefront-api/internal/app/service"
	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/catalog"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/config"
	storefronthttp "github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/http"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/http/handler"
	filestorage "github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/storage/file"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/storage/memory"
	redisstorage "github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/storage/redis"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/telemetry"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the site variant config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize OpenTelemetry
	var telem *telemetry.Telemetry
	if cfg.OTLP.Enabled {
		telem, err = telemetry.NewTelemetry(&cfg.OTLP)
		if err != nil {
			log.Fatalf("Failed to initialize telemetry: %v", err)
		}
	} else {
		telem = telemetry.NewNoOpTelemetry(&cfg.OTLP)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := telem.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	tracer := telem.TracerProvider.Tracer("storefront-api")
	meter := telem.MeterProvider.Meter("storefront-api")
	logger := telem.Logger

	logger.Info("Starting storefront API",
		slog.String("business", cfg.Business.Name),
	)

	// Load the static product catalog
	products, err := catalog.Load(cfg.Catalog.Path, logger)
	if err != nil {
		logger.Error("Failed to load catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Select the cart persistence backend
	storage := newCartStorage(cfg, logger)

	// Initialize services
	catalogService := service.NewCatalogService(products, tracer, meter, logger)
	cartService := service.NewCartService(ctx, products, storage, tracer, meter, logger)
	orderService := service.NewOrderService(cartService, cfg.Business, tracer, meter, logger)
	favoritesService := service.NewFavoritesService(products, tracer, meter, logger)

	// Initialize HTTP server
	server := storefronthttp.NewServer(&cfg.Server, storefronthttp.Handlers{
		Catalog:   handler.NewCatalogHandler(catalogService, logger),
		Cart:      handler.NewCartHandler(cartService, logger),
		Order:     handler.NewOrderHandler(orderService, logger),
		Favorites: handler.NewFavoritesHandler(favoritesService, logger),
	}, logger, telem)

	go func() {
		if err := server.Start(); err != nil {
			logger.Error("Server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutting down server...")
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	}

	logger.Info("Server stopped")
}

// newCartStorage picks the cart slot backend from config. Unknown backends
// fall back to memory with a warning rather than refusing to start: a broken
// cart slot must never block the storefront.
func newCartStorage(cfg *config.Config, logger *slog.Logger) domain.CartStorage {
	switch cfg.Cart.Backend {
	case "redis":
		logger.Info("Using redis cart storage",
			slog.String("addr", cfg.Cart.Redis.Addr),
			slog.String("key", cfg.Cart.Key),
		)
		return redisstorage.NewCartStorage(cfg.Cart.Redis, cfg.Cart.Key)
	case "file":
		logger.Info("Using file cart storage", slog.String("path", cfg.Cart.Path))
		return filestorage.NewCartStorage(cfg.Cart.Path)
	case "memory":
		return memory.NewCartStorage()
	default:
		logger.Warn("Unknown cart storage backend, using memory",
			slog.String("backend", cfg.Cart.Backend),
		)
		return memory.NewCartStorage()
	}
}
