package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bosta-shop/bosta/internal/app"
	"github.com/bosta-shop/bosta/internal/auth"
	"github.com/bosta-shop/bosta/internal/cart"
	"github.com/bosta-shop/bosta/internal/catalog"
	"github.com/bosta-shop/bosta/internal/notify"
	"github.com/bosta-shop/bosta/internal/owned"
	"github.com/bosta-shop/bosta/internal/platform/blob"
	"github.com/bosta-shop/bosta/internal/platform/cache"
	"github.com/bosta-shop/bosta/internal/wishlist"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	blobStore := blob.New(redisClient)

	authService := auth.NewService(ctx, auth.NewRepository(blobStore), nil, logger)
	apiClient := catalog.NewClient(cfg.UpstreamBaseURL, authService)
	authService.SetAPI(apiClient)

	cartService := cart.NewService(ctx, cart.NewRepository(blobStore), logger)
	wishlistService := wishlist.NewService(ctx, wishlist.NewRepository(blobStore), logger)
	ownedStore := owned.NewStore(ctx, owned.NewRepository(blobStore), logger)
	recentStore := owned.NewRecentStore()

	catalogCache := catalog.NewCache(redisClient, cfg.CatalogCacheTTL)
	catalogService := catalog.NewService(apiClient, catalogCache, ownedStore, recentStore)
	facade := owned.NewFacade(apiClient, ownedStore, recentStore, wishlistService)

	bus := notify.NewBus(cfg.ToastVisibleFor)

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		Bus:             bus,
		AuthService:     authService,
		AuthHandler:     auth.NewHandler(logger, authService),
		CatalogHandler:  catalog.NewHandler(logger, catalogService),
		CartHandler:     cart.NewHandler(logger, cartService),
		WishlistHandler: wishlist.NewHandler(logger, wishlistService),
		OwnedHandler:    owned.NewHandler(logger, facade, ownedStore),
		NotifyHandler:   notify.NewHandler(bus),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
