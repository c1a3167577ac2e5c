package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/fashionbrand/storefront/internal/cache"
	"github.com/fashionbrand/storefront/internal/config"
	"github.com/fashionbrand/storefront/internal/db"
	"github.com/fashionbrand/storefront/internal/es"
	"github.com/fashionbrand/storefront/internal/events"
	"github.com/fashionbrand/storefront/internal/httpserver"
	"github.com/fashionbrand/storefront/internal/logging"
	authmw "github.com/fashionbrand/storefront/internal/middleware/auth"
	"github.com/fashionbrand/storefront/internal/middleware/loggingmw"
	"github.com/fashionbrand/storefront/internal/repo"
	"github.com/fashionbrand/storefront/internal/service"
	"github.com/fashionbrand/storefront/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LOG_LEVEL)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	producer := events.NewProducer(cfg.KAFKA_ADDRESS)
	defer producer.Close()

	var esClient *elasticsearch.Client
	if cfg.ES_URL != "" {
		esClient, err = es.NewClient(cfg)
		if err != nil {
			logger.Warn("elasticsearch unavailable, search disabled", "error", err)
			esClient = nil
		}
	}

	configCache := cache.New(cfg.REDIS_ADDR)

	var images *storage.ImageStore
	if cfg.MINIO_ENDPOINT != "" {
		storeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		images, err = storage.NewImageStore(storeCtx,
			cfg.MINIO_ENDPOINT, cfg.MINIO_ACCESS_KEY, cfg.MINIO_SECRET_KEY,
			cfg.MINIO_BUCKET, cfg.MINIO_USE_SSL == "true")
		cancel()
		if err != nil {
			logger.Warn("minio unavailable, uploads disabled", "error", err)
			images = nil
		}
	}

	r := &repo.GormRepo{DB: database}

	authSvc := &service.AuthService{
		Repo:              r,
		Secret:            []byte(cfg.JWT_SECRET),
		Producer:          producer,
		AdminCreateSecret: cfg.ADMIN_CREATE_SECRET,
	}
	cartSvc := &service.CartService{Repo: r, Producer: producer}
	configSvc := &service.ConfigService{Repo: r, Cache: configCache}
	orderSvc := &service.OrderService{Repo: r, Config: configSvc, Producer: producer}
	catalogSvc := &service.CatalogService{Repo: r}
	adminSvc := &service.AdminService{Repo: r, ES: esClient}

	sessions := &authmw.Sessions{DB: database, Secret: []byte(cfg.JWT_SECRET)}

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		Sessions:       sessions,
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		CartHandler:    &httpserver.CartHTTP{Svc: cartSvc},
		OrderHandler:   &httpserver.OrderHTTP{Svc: orderSvc},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
		SearchHandler:  &httpserver.SearchHTTP{ES: esClient, Index: es.ProductIndex},
		AdminHandler: &httpserver.AdminHTTP{
			Auth:    authSvc,
			Svc:     adminSvc,
			Orders:  orderSvc,
			Config:  configSvc,
			Catalog: catalogSvc,
			Images:  images,
		},
	})

	go func() {
		logger.Info("starting server", "addr", cfg.HTTP_ADDR)
		if err := e.Start(cfg.HTTP_ADDR); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
