package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	fulfillmentv1 "github.com/fekuna/omnipos-fulfillment-service/api/fulfillmentv1"
	"github.com/fekuna/omnipos-fulfillment-service/config"
	"github.com/fekuna/omnipos-fulfillment-service/internal/catalog"
	catListenerPkg "github.com/fekuna/omnipos-fulfillment-service/internal/catalog/listener"
	catRepoPkg "github.com/fekuna/omnipos-fulfillment-service/internal/catalog/repository"
	catUCPkg "github.com/fekuna/omnipos-fulfillment-service/internal/catalog/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/event"
	"github.com/fekuna/omnipos-fulfillment-service/internal/gateway"
	"github.com/fekuna/omnipos-fulfillment-service/internal/grievance"
	grvH "github.com/fekuna/omnipos-fulfillment-service/internal/grievance/handler"
	grvRepoPkg "github.com/fekuna/omnipos-fulfillment-service/internal/grievance/repository"
	grvUCPkg "github.com/fekuna/omnipos-fulfillment-service/internal/grievance/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory"
	invH "github.com/fekuna/omnipos-fulfillment-service/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/omnipos-fulfillment-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-fulfillment-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/memstore"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order"
	ordH "github.com/fekuna/omnipos-fulfillment-service/internal/order/handler"
	ordRepoPkg "github.com/fekuna/omnipos-fulfillment-service/internal/order/repository"
	ordUCPkg "github.com/fekuna/omnipos-fulfillment-service/internal/order/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/pricing"
	"github.com/fekuna/omnipos-fulfillment-service/internal/purchasing"
	poH "github.com/fekuna/omnipos-fulfillment-service/internal/purchasing/handler"
	poListenerPkg "github.com/fekuna/omnipos-fulfillment-service/internal/purchasing/listener"
	poRepoPkg "github.com/fekuna/omnipos-fulfillment-service/internal/purchasing/repository"
	poUCPkg "github.com/fekuna/omnipos-fulfillment-service/internal/purchasing/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality"
	qaH "github.com/fekuna/omnipos-fulfillment-service/internal/quality/handler"
	qaRepoPkg "github.com/fekuna/omnipos-fulfillment-service/internal/quality/repository"
	qaUCPkg "github.com/fekuna/omnipos-fulfillment-service/internal/quality/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/requirement"
	"github.com/fekuna/omnipos-fulfillment-service/internal/shipment"
	shpH "github.com/fekuna/omnipos-fulfillment-service/internal/shipment/handler"
	shpRepoPkg "github.com/fekuna/omnipos-fulfillment-service/internal/shipment/repository"
	shpUCPkg "github.com/fekuna/omnipos-fulfillment-service/internal/shipment/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/broker"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/cache"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/database"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

type repositories struct {
	inventory  inventory.Repository
	orders     order.Repository
	quality    quality.Repository
	shipments  shipment.Repository
	grievances grievance.Repository
	purchasing purchasing.Repository
	catalog    catalog.Repository
	tx         database.Transactor
	closeFn    func() error
}

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	// 3. Storage
	repos, err := openRepositories(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Could not open storage", zap.Error(err))
	}
	defer repos.closeFn()

	// 4. Redis: order locks and catalog cache
	var locker cache.Locker = memstore.NewLocker()
	var productCache catUCPkg.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		locker = redisClient
		productCache = redisClient
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		appLogger.Warn("Redis disabled, using in-process order locks")
	}

	// 5. Kafka: lifecycle events out, procurement receipts in
	var publisher event.Publisher = event.NopPublisher{}
	var procurementConsumer, catalogConsumer *broker.KafkaConsumer
	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.EventsTopic,
		})
		defer producer.Close()
		publisher = event.NewKafkaPublisher(producer, appLogger)

		procurementConsumer = broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.ProcurementTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer procurementConsumer.Close()

		catalogConsumer = broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.CatalogTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer catalogConsumer.Close()
		appLogger.Info("Connected to Kafka",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("events_topic", cfg.Kafka.EventsTopic),
			zap.String("procurement_topic", cfg.Kafka.ProcurementTopic),
			zap.String("catalog_topic", cfg.Kafka.CatalogTopic),
		)
	}

	// 6. Pricing table
	table, err := pricing.Load(cfg.Fulfillment.PricingTablePath)
	if err != nil {
		appLogger.Warn("Could not load pricing table, quoting without surcharges",
			zap.String("path", cfg.Fulfillment.PricingTablePath), zap.Error(err))
		table = pricing.Default()
	}

	// 7. Initialize UseCases
	lockTTL := time.Duration(cfg.Fulfillment.LockTTLSeconds) * time.Second

	invUC := invUCPkg.NewInventoryUseCase(repos.inventory, publisher, appLogger, cfg.Fulfillment.LowStockThresholdGrams)
	catUC := catUCPkg.NewCatalogUseCase(repos.catalog, productCache, time.Duration(cfg.Fulfillment.CatalogCacheTTLSeconds)*time.Second, appLogger)
	ordUC := ordUCPkg.NewOrderUseCase(ordUCPkg.Dependencies{
		Orders:     repos.orders,
		Inventory:  invUC,
		Resolver:   requirement.NewResolver(invUC, appLogger),
		Catalog:    catUC,
		Pricing:    table,
		Quality:    repos.quality,
		Grievances: repos.grievances,
		Tx:         repos.tx,
		Locker:     locker,
		Events:     publisher,
		Logger:     appLogger,
		Settings: ordUCPkg.Settings{
			TaxPercent:         cfg.Fulfillment.TaxPercent,
			ProductionDays:     cfg.Fulfillment.ProductionDays,
			RawMaterialDays:    cfg.Fulfillment.RawMaterialDays,
			QualityControlDays: cfg.Fulfillment.QualityControlDays,
			BacklogDays:        cfg.Fulfillment.BacklogDays,
			BacklogThreshold:   cfg.Fulfillment.BacklogThreshold,
			LockTTL:            lockTTL,
		},
	})
	qaUC := qaUCPkg.NewQualityUseCase(qaUCPkg.Dependencies{
		Quality:          repos.quality,
		Orders:           repos.orders,
		Shipments:        repos.shipments,
		Tx:               repos.tx,
		Locker:           locker,
		Events:           publisher,
		Logger:           appLogger,
		ShippingLeadDays: cfg.Fulfillment.ShippingLeadDays,
		LockTTL:          lockTTL,
	})
	shpUC := shpUCPkg.NewShipmentUseCase(repos.shipments, appLogger)
	grvUC := grvUCPkg.NewGrievanceUseCase(repos.grievances)
	poUC := poUCPkg.NewPurchasingUseCase(repos.purchasing, invUC, table, repos.tx, publisher, appLogger)

	// 8. Initialize Listeners
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if procurementConsumer != nil {
		poListener := poListenerPkg.NewProcurementListener(procurementConsumer, poUC, appLogger)
		go poListener.Start(ctx)
	}
	if catalogConsumer != nil && productCache != nil {
		catListener := catListenerPkg.NewCatalogListener(catalogConsumer, catUC, appLogger)
		go catListener.Start(ctx)
	}

	// 9. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.Error(err))
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.ContextInterceptor(),
			middleware.RecoveryInterceptor(appLogger),
			middleware.LoggingInterceptor(appLogger),
		),
	)

	fulfillmentv1.RegisterInventoryServiceServer(grpcServer, invH.NewInventoryHandler(invUC, appLogger))
	fulfillmentv1.RegisterOrderServiceServer(grpcServer, ordH.NewOrderHandler(ordUC, appLogger))
	fulfillmentv1.RegisterQualityServiceServer(grpcServer, qaH.NewQualityHandler(qaUC, appLogger))
	fulfillmentv1.RegisterShipmentServiceServer(grpcServer, shpH.NewShipmentHandler(shpUC, appLogger))
	fulfillmentv1.RegisterGrievanceServiceServer(grpcServer, grvH.NewGrievanceHandler(grvUC, appLogger))
	fulfillmentv1.RegisterPurchasingServiceServer(grpcServer, poH.NewPurchasingHandler(poUC, appLogger))

	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server", zap.String("port", port))
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// 10. Start HTTP gateway
	if cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	httpPort := cfg.Server.HTTPPort
	if !strings.HasPrefix(httpPort, ":") {
		httpPort = ":" + httpPort
	}
	httpServer := &http.Server{
		Addr: httpPort,
		Handler: gateway.NewRouter(gateway.Services{
			Inventory:  invUC,
			Orders:     ordUC,
			Quality:    qaUC,
			Shipments:  shpUC,
			Grievances: grvUC,
			Purchasing: poUC,
		}, appLogger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	appLogger.Info("Starting HTTP gateway", zap.String("port", httpPort))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP gateway shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func openRepositories(cfg *config.Config, log logger.ZapLogger) (*repositories, error) {
	if cfg.Storage.Driver == "memory" {
		store := memstore.New()
		log.Warn("Using in-memory storage, data is lost on restart")
		return &repositories{
			inventory:  store.Inventory(),
			orders:     store.Orders(),
			quality:    store.Quality(),
			shipments:  store.Shipments(),
			grievances: store.Grievances(),
			purchasing: store.Purchasing(),
			catalog:    store.Catalog(),
			tx:         store,
			closeFn:    func() error { return nil },
		}, nil
	}

	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		return nil, err
	}
	log.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	return &repositories{
		inventory:  invRepoPkg.NewPGRepository(db),
		orders:     ordRepoPkg.NewPGRepository(db),
		quality:    qaRepoPkg.NewPGRepository(db),
		shipments:  shpRepoPkg.NewPGRepository(db),
		grievances: grvRepoPkg.NewPGRepository(db),
		purchasing: poRepoPkg.NewPGRepository(db),
		catalog:    catRepoPkg.NewPGRepository(db),
		tx:         postgres.NewTxManager(db),
		closeFn:    db.Close,
	}, nil
}
