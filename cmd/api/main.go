package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/event"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/logging"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// .env is optional, real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New("info").Error("load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	gormDB, err := db.Connect()
	if err != nil {
		logger.Error("connect database", "error", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ArtisanProfile{},
		&model.Category{},
		&model.Material{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logger.Error("migrate schema", "error", err)
		os.Exit(1)
	}

	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	artisanRepo := infraRepo.NewArtisanGormRepository(gormDB)
	taxonomyRepo := infraRepo.NewTaxonomyGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	producer := event.NewProducer(cfg.KafkaBrokers)
	if producer == nil {
		logger.Info("kafka brokers not configured, domain events disabled")
	}

	authUC := usecase.NewAuthUsecase(cfg, userRepo, validator.NewAuthValidator(userRepo))
	productUC := usecase.NewProductUsecase(productRepo, artisanRepo, taxonomyRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager)
	artisanUC := usecase.NewArtisanUsecase(txManager, artisanRepo, productRepo)
	profileUC := usecase.NewProfileUsecase(orderRepo, orderItemRepo, productRepo, artisanRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(logging.RequestLogger(logger))

	handler.NewProductHandler(productUC).RegisterRoutes(e)
	handler.NewAuthHandler(authUC).RegisterRoutes(e, cfg)
	handler.NewCheckoutHandler(checkoutUC, producer).RegisterRoutes(e, cfg)
	handler.NewArtisanHandler(artisanUC, producer).RegisterRoutes(e, cfg)
	handler.NewSellerProductHandler(productUC, producer).RegisterRoutes(e, cfg)
	handler.NewProfileHandler(profileUC).RegisterRoutes(e, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("close kafka producer", "error", err)
		}
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("stopped")
}
