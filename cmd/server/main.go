package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/wms/backend/internal/application/catalog"
	custodyapp "github.com/wms/backend/internal/application/custody"
	identityapp "github.com/wms/backend/internal/application/identity"
	inventoryapp "github.com/wms/backend/internal/application/inventory"
	noteapp "github.com/wms/backend/internal/application/note"
	notificationapp "github.com/wms/backend/internal/application/notification"
	requestapp "github.com/wms/backend/internal/application/request"
	"github.com/wms/backend/internal/infrastructure/auth"
	"github.com/wms/backend/internal/infrastructure/cache"
	"github.com/wms/backend/internal/infrastructure/config"
	"github.com/wms/backend/internal/infrastructure/event"
	"github.com/wms/backend/internal/infrastructure/logger"
	"github.com/wms/backend/internal/infrastructure/persistence"
	"github.com/wms/backend/internal/infrastructure/telemetry"
	"github.com/wms/backend/internal/interfaces/http/handler"
	"github.com/wms/backend/internal/interfaces/http/middleware"
	"github.com/wms/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting warehouse backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if tracerProvider.IsEnabled() {
		if err := telemetry.RegisterDBTracing(db.DB, cfg.Database.DBName); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}
	log.Info("Database connected")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	departmentRepo := persistence.NewGormDepartmentRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	locationRepo := persistence.NewGormLocationRepository(db.DB)
	stockRepo := persistence.NewGormStockRepository(db.DB)
	movementRepo := persistence.NewGormProductMovementRepository(db.DB)
	exitNoteRepo := persistence.NewGormExitNoteRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)

	// Transaction scopes
	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB)
	requestScope := persistence.NewGormRequestTransactionScope(db.DB)
	noteScope := persistence.NewGormNoteTransactionScope(db.DB)
	custodyScope := persistence.NewGormCustodyTransactionScope(db.DB)

	// Event bus and notification fan-out
	eventBus := event.NewInMemoryEventBus(log)
	notificationService := notificationapp.NewNotificationService(notificationRepo, log)
	requestNotifications := notificationapp.NewRequestNotificationHandler(notificationService)
	eventBus.Subscribe(requestNotifications)

	// Application services
	productService := catalogapp.NewProductService(productRepo)
	userService := identityapp.NewUserService(userRepo)
	departmentService := identityapp.NewDepartmentService(departmentRepo, userRepo)
	warehouseService := inventoryapp.NewWarehouseService(warehouseRepo)
	locationService := inventoryapp.NewLocationService(locationRepo, productRepo, inventoryScope, log)
	stockService := inventoryapp.NewStockService(stockRepo, movementRepo)
	materialRequestService := requestapp.NewMaterialRequestService(userRepo, departmentRepo, requestScope, eventBus, log)
	purchaseRequestService := requestapp.NewPurchaseRequestService(userRepo, warehouseRepo, departmentRepo, requestScope, eventBus, log)
	entryNoteService := noteapp.NewEntryNoteService(noteScope, log)
	receivingNoteService := noteapp.NewReceivingNoteService(noteScope, log)
	exitNoteService := noteapp.NewExitNoteService(noteScope, eventBus, log)
	reportService := noteapp.NewReportService(noteScope, log)
	custodyService := custodyapp.NewCustodyService(exitNoteRepo, custodyScope, log)
	custodyReturnService := custodyapp.NewCustodyReturnService(productRepo, custodyScope, log)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		defer func() {
			_ = redisBlacklist.Close()
		}()
	}

	// Duplicate-submission protection for mutating endpoints
	var idempotencyStore cache.IdempotencyStore
	redisIdempotency, err := cache.NewRedisIdempotencyStore(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory idempotency store", zap.Error(err))
		inMemoryIdempotency := cache.NewInMemoryIdempotencyStore()
		defer func() {
			_ = inMemoryIdempotency.Close()
		}()
		idempotencyStore = inMemoryIdempotency
	} else {
		idempotencyStore = redisIdempotency
		defer func() {
			_ = redisIdempotency.Close()
		}()
	}

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Tracing(cfg.App.Name),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsConfig),
		middleware.Secure(),
		middleware.BodyLimit(1<<20),
	)

	authMiddleware := middleware.Auth(middleware.AuthConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})

	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithProtection(authMiddleware, middleware.Idempotency(idempotencyStore, log)),
	)
	r.RegisterPublic(handler.NewSystemHandler(db))
	r.Register(
		handler.NewAuthHandler(blacklist),
		handler.NewProductHandler(productService),
		handler.NewUserHandler(userService),
		handler.NewDepartmentHandler(departmentService),
		handler.NewWarehouseHandler(warehouseService),
		handler.NewLocationHandler(locationService),
		handler.NewStockHandler(stockService),
		handler.NewMaterialRequestHandler(materialRequestService),
		handler.NewPurchaseRequestHandler(purchaseRequestService),
		handler.NewEntryNoteHandler(entryNoteService),
		handler.NewReceivingNoteHandler(receivingNoteService),
		handler.NewExitNoteHandler(exitNoteService),
		handler.NewReportHandler(reportService),
		handler.NewCustodyHandler(custodyService, custodyReturnService),
		handler.NewNotificationHandler(notificationService),
	)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Event bus did not drain in time", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
