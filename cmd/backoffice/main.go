package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopnobd/backoffice/config"
	handler "github.com/shopnobd/backoffice/internal/handler/http"
	"github.com/shopnobd/backoffice/internal/logger"
	"github.com/shopnobd/backoffice/internal/middleware"
	"github.com/shopnobd/backoffice/internal/service"
	"github.com/shopnobd/backoffice/internal/upstream"
	"github.com/shopnobd/backoffice/internal/worker"
	"go.uber.org/zap"
)

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := upstream.New(upstream.Config{
		BaseURL: cfg.UpstreamAddr,
		Token:   cfg.UpstreamToken,
		Timeout: cfg.UpstreamTimeout,
	})

	// dependency injection
	// orders
	orderService := service.NewOrderService(client, cfg.OrderFilterMode)
	orderHandler := handler.NewOrderHandler(orderService)

	// catalog
	catalogService := service.NewCatalogService(client)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// content
	contentService := service.NewContentService(client)
	contentHandler := handler.NewContentHandler(contentService)

	// marketing
	marketingService := service.NewMarketingService(client)
	marketingHandler := handler.NewMarketingHandler(marketingService)

	// local filtering works over a periodically refreshed snapshot
	if cfg.OrderFilterMode == config.OrderFilterModeLocal {
		refresher := worker.NewSnapshotRefresher(orderService, cfg.SnapshotRefresh)
		go refresher.Run(ctx)
	}

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger.Log))

	router.Get("/api/marketing-config/public", marketingHandler.GetConfig())

	// routes that require the upstream credential
	router.Group(func(group chi.Router) {
		group.Use(middleware.Auth())

		group.Post("/api/order/list", orderHandler.ListOrders())
		group.Post("/api/order/status", orderHandler.UpdateStatus())
		group.Post("/api/order/update-address", orderHandler.UpdateAddress())
		group.Post("/api/order/courier/check", orderHandler.CheckCourier())

		group.Post("/api/product/add", catalogHandler.AddProduct())
		group.Post("/api/product/edit", catalogHandler.EditProduct())
		group.Post("/api/product/single", catalogHandler.GetProduct())
		group.Get("/api/product/list", catalogHandler.ListProducts())
		group.Post("/api/product/remove", catalogHandler.RemoveProduct())

		group.Get("/api/category", catalogHandler.ListCategories())
		group.Post("/api/category", catalogHandler.CreateCategory())
		group.Put("/api/category/{id}", catalogHandler.UpdateCategory())
		group.Delete("/api/category/{id}", catalogHandler.DeleteCategory())

		group.Get("/api/content/headlines", contentHandler.ListHeadlines())
		group.Post("/api/content/headlines", contentHandler.CreateHeadline())
		group.Put("/api/content/headlines/{id}", contentHandler.UpdateHeadline())
		group.Delete("/api/content/headlines/{id}", contentHandler.DeleteHeadline())

		group.Get("/api/content/banners", contentHandler.ListBanners())
		group.Post("/api/content/banners", contentHandler.CreateBanner())
		group.Put("/api/content/banners/{id}", contentHandler.UpdateBanner())
		group.Delete("/api/content/banners/{id}", contentHandler.DeleteBanner())

		group.Put("/api/marketing-config", marketingHandler.UpdateConfig())
	})

	logger.Log.Info("Running server", zap.String("addr", cfg.RunAddr))

	if err := http.ListenAndServe(cfg.RunAddr, router); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
