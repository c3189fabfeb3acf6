package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	deleteShopSettingsHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/delete_shop_settings"
	getDeliveryOptionsHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/get_delivery_options"
	getPolicyHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/get_policy"
	getProxySettingsHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/get_proxy_settings"
	getShopSettingsHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/get_shop_settings"
	updateShopSettingsHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/update_shop_settings"
	validateDeliveryHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/validate_delivery"
	"github.com/m04kA/SMC-DeliveryService/internal/api/middleware"
	"github.com/m04kA/SMC-DeliveryService/internal/config"
	memoryCache "github.com/m04kA/SMC-DeliveryService/internal/infra/cache"
	settingsRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/settings"
	tokenRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/token"
	catalogClient "github.com/m04kA/SMC-DeliveryService/internal/integrations/productcatalog"
	settingsService "github.com/m04kA/SMC-DeliveryService/internal/service/settings"
	tagsService "github.com/m04kA/SMC-DeliveryService/internal/service/tags"
	getDeliveryOptionsUC "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_delivery_options"
	resolvePolicyUC "github.com/m04kA/SMC-DeliveryService/internal/usecase/resolve_policy"
	validateSelectionUC "github.com/m04kA/SMC-DeliveryService/internal/usecase/validate_selection"
	"github.com/m04kA/SMC-DeliveryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeliveryService/pkg/logger"
	"github.com/m04kA/SMC-DeliveryService/pkg/metrics"
	"github.com/m04kA/SMC-DeliveryService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-DeliveryService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-DeliveryService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент каталога продуктов (Admin GraphQL API)
	catalog := catalogClient.NewClient(
		cfg.Catalog.APIVersion,
		time.Duration(cfg.Catalog.Timeout)*time.Second,
		cfg.Catalog.BatchSize,
		log,
	)
	log.Info("Product catalog client initialized (api_version=%s, timeout=%ds, batch_size=%d)",
		cfg.Catalog.APIVersion, cfg.Catalog.Timeout, cfg.Catalog.BatchSize)

	// Инициализируем репозитории (с метриками или без)
	var (
		settingsRepository *settingsRepo.Repository
		tokenRepository    *tokenRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисе настроек)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		tokenRepository = tokenRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		settingsRepository = settingsRepo.NewRepository(db)
		tokenRepository = tokenRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// TTL кэш тегов продуктов
	tagCacheTTL := time.Duration(cfg.Catalog.TagCacheTTLSeconds) * time.Second
	tagCache := memoryCache.NewMemoryCache(tagCacheTTL, time.Minute)

	// Инициализируем сервисы
	tagsSvc := tagsService.NewService(
		tokenRepository,
		catalog,
		tagCache,
		tagCacheTTL,
		log,
	)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	resolvePolicyUseCase := resolvePolicyUC.NewUseCase(
		settingsRepository,
		tagsSvc,
		log,
	)
	getDeliveryOptionsUseCase := getDeliveryOptionsUC.NewUseCase(
		settingsRepository,
		log,
	)
	validateSelectionUseCase := validateSelectionUC.NewUseCase(
		settingsRepository,
		tagsSvc,
		log,
	)

	// Инициализируем handlers
	getPolicy := getPolicyHandler.NewHandler(resolvePolicyUseCase, log)
	getProxySettings := getProxySettingsHandler.NewHandler(resolvePolicyUseCase, log)
	getDeliveryOptions := getDeliveryOptionsHandler.NewHandler(getDeliveryOptionsUseCase, log)
	validateDelivery := validateDeliveryHandler.NewHandler(validateSelectionUseCase, log)
	getShopSettings := getShopSettingsHandler.NewHandler(settingsSvc, log)
	updateShopSettings := updateShopSettingsHandler.NewHandler(settingsSvc, log)
	deleteShopSettings := deleteShopSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PROXY ROUTES (проверка HMAC подписи app-proxy)
	// ============================================================

	proxy := r.PathPrefix("/proxy/delivery").Subrouter()
	proxy.Use(middleware.ProxySignature(cfg.Proxy.Secret, log))

	// Действующая политика доставки для корзины
	proxy.HandleFunc("/policy", getPolicy.Handle).Methods(http.MethodGet)

	// Базовые настройки + вычисленное окно (bootstrap витрины)
	proxy.HandleFunc("/settings", getProxySettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// API ROUTES
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()

	// Календарь дат доставки
	api.HandleFunc("/delivery/options", getDeliveryOptions.Handle).Methods(http.MethodGet)

	// Проверка выбранной даты/времени перед оформлением заказа
	api.HandleFunc("/delivery/validate", validateDelivery.Handle).Methods(http.MethodPost)

	// --- Настройки магазина (админка) ---
	api.HandleFunc("/shops/{shop}/settings", getShopSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shop}/settings", updateShopSettings.Handle).Methods(http.MethodPut)
	api.HandleFunc("/shops/{shop}/settings", deleteShopSettings.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
