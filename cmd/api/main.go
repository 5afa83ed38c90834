package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	deliveryHTTP "github.com/smartpark/garage/internal/delivery/http"
	"github.com/smartpark/garage/internal/infrastructure/pdf"
	"github.com/smartpark/garage/internal/pkg/config"
	"github.com/smartpark/garage/internal/pkg/jwt"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/repository/memory"
	"github.com/smartpark/garage/internal/usecase/auth"
	"github.com/smartpark/garage/internal/usecase/car"
	"github.com/smartpark/garage/internal/usecase/catalog"
	"github.com/smartpark/garage/internal/usecase/invoice"
	"github.com/smartpark/garage/internal/usecase/payment"
	"github.com/smartpark/garage/internal/usecase/record"
	"github.com/smartpark/garage/internal/usecase/report"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Инициализация logger
	// =========================================================================

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	log.Info("Starting SmartPark Garage API server", map[string]interface{}{
		"version": "1.0.0",
		"garage":  cfg.Garage.Name,
	})

	// =========================================================================
	// Создание хранилища и repositories
	// =========================================================================

	// Все данные живут в памяти процесса и теряются при перезапуске
	store := memory.NewStore()

	serviceRepo := memory.NewServiceRepository(store)
	carRepo := memory.NewCarRepository(store)
	recordRepo := memory.NewRecordRepository(store)
	paymentRepo := memory.NewPaymentRepository(store)

	log.Info("In-memory store initialized")

	// =========================================================================
	// Создание JWT token service
	// =========================================================================

	tokenService := jwt.NewTokenService(
		cfg.JWT.SecretKey,
		cfg.JWT.AccessExpiry,
	)

	log.Info("JWT token service initialized")

	// =========================================================================
	// Создание use case services
	// =========================================================================

	authService := auth.NewService(tokenService, cfg.Auth.LoginDelay, log)
	catalogService := catalog.NewService(serviceRepo, log)
	carService := car.NewService(carRepo, log)
	recordService := record.NewService(recordRepo, carRepo, serviceRepo, log)
	paymentService := payment.NewService(paymentRepo, recordRepo, serviceRepo, carRepo, log)
	reportService := report.NewService(recordRepo, paymentRepo, serviceRepo, carRepo, log)
	invoiceService := invoice.NewService(paymentService, pdf.New(), cfg.Garage, log)

	log.Info("Use case services initialized")

	// =========================================================================
	// Предзаполнение каталога услуг
	// =========================================================================

	ctx := context.Background()
	if err := catalogService.SeedDefaults(ctx); err != nil {
		log.Fatal("Failed to seed service catalog", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("Service catalog seeded")

	// =========================================================================
	// Создание HTTP handlers
	// =========================================================================

	authHandler := deliveryHTTP.NewAuthHandler(authService, log)
	serviceHandler := deliveryHTTP.NewServiceHandler(catalogService, log)
	carHandler := deliveryHTTP.NewCarHandler(carService, log)
	recordHandler := deliveryHTTP.NewRecordHandler(recordService, reportService, log)
	paymentHandler := deliveryHTTP.NewPaymentHandler(paymentService, invoiceService, log)
	reportHandler := deliveryHTTP.NewReportHandler(reportService, log)

	log.Info("HTTP handlers initialized")

	// =========================================================================
	// Создание и настройка HTTP router
	// =========================================================================

	router := deliveryHTTP.NewRouter(
		authHandler,
		serviceHandler,
		carHandler,
		recordHandler,
		paymentHandler,
		reportHandler,
		tokenService,
		cfg,
		log,
	)

	handler := router.Setup()

	log.Info("HTTP router configured")

	// =========================================================================
	// Создание HTTP сервера
	// =========================================================================

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// =========================================================================
	// Запуск сервера в goroutine
	// =========================================================================

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	// =========================================================================
	// Graceful shutdown
	// =========================================================================

	// Канал для получения сигналов операционной системы
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	// Блокируемся до получения сигнала или ошибки сервера
	select {
	case err := <-serverErrors:
		log.Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		// Даем серверу 30 секунд на graceful shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})

			// Принудительное закрытие
			if err := srv.Close(); err != nil {
				log.Fatal("Failed to close server", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		log.Info("Server stopped gracefully")
	}
}
