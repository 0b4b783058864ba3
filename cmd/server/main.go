package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/daontrade/exportdesk/internal/config"
	"github.com/daontrade/exportdesk/internal/entity"
	"github.com/daontrade/exportdesk/internal/handler"
	"github.com/daontrade/exportdesk/internal/middleware"
	"github.com/daontrade/exportdesk/internal/repository"
	"github.com/daontrade/exportdesk/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting exportdesk service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	rdb := initRedis(cfg.Redis)

	minioClient, err := initMinio(cfg.MinIO)
	if err != nil {
		zapLogger.Warn("Object storage unavailable, uploads disabled", zap.Error(err))
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, service.Options{
		Redis:       rdb,
		Minio:       minioClient,
		MinioBucket: cfg.MinIO.Bucket,
		JWTSecret:   cfg.JWT.Secret,
		JWTExpireH:  cfg.JWT.ExpireHours,
		IntakeBase:  cfg.Intake.BaseURL,
	})
	handlers := handler.NewHandlers(services)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func initMinio(cfg config.MinIOConfig) (*minio.Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint not configured")
	}
	return minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := r.Group("/api/v1")
	{
		// auth (no login required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		// public lead intake behind exhibition QR codes
		v1.POST("/intake/:id", h.Exhibition.Intake)

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/password", h.Auth.ChangePassword)
			authorized.POST("/auth/register", middleware.RequireRole(entity.RoleAdmin), h.Auth.Register)

			// customers
			customers := authorized.Group("/customers")
			{
				customers.GET("", h.Customer.List)
				customers.POST("", h.Customer.Create)
				customers.GET("/countries", h.Customer.Countries)
				customers.GET("/export", h.Customer.Export)
				customers.POST("/import", h.Customer.Import)
				customers.GET("/:id", h.Customer.Get)
				customers.PUT("/:id", h.Customer.Update)
				customers.DELETE("/:id", h.Customer.Delete)
			}

			// product catalog
			products := authorized.Group("/products")
			{
				products.GET("", h.Product.List)
				products.POST("", h.Product.Create)
				products.GET("/export", h.Product.Export)
				products.POST("/import", h.Product.Import)
				products.GET("/:id", h.Product.Get)
				products.PUT("/:id", h.Product.Update)
				products.DELETE("/:id", h.Product.Delete)
			}

			// orders
			orders := authorized.Group("/orders")
			{
				orders.GET("", h.Order.List)
				orders.POST("", h.Order.Create)
				orders.POST("/batch-delete", h.Order.DeleteBatch)
				orders.GET("/:id", h.Order.Get)
				orders.PUT("/:id", h.Order.Update)
				orders.DELETE("/:id", h.Order.Delete)
				orders.PUT("/:id/archive", h.Order.Archive)

				// workflow card actions
				orders.PUT("/:id/status", h.Workflow.MoveStatus)
				orders.PUT("/:id/payment", h.Workflow.SetPaymentStatus)
				orders.PUT("/:id/flags", h.Workflow.UpdateFlags)

				// trade documents
				orders.GET("/:id/documents/:type", h.Document.Open)
				orders.POST("/:id/documents/:type/generate", h.Document.Generate)
				orders.POST("/:id/documents/:type/recalculate", h.Document.Recalculate)
				orders.PUT("/:id/documents/:type", h.Document.Save)
				orders.DELETE("/:id/documents/:type", h.Document.Clear)
				orders.GET("/:id/documents/:type/excel", h.Document.Excel)
			}

			// workflow board
			authorized.GET("/workflow/board", h.Workflow.Board)

			// analytics
			authorized.GET("/analytics/dashboard", h.Analytics.Dashboard)

			// exhibitions
			exhibitions := authorized.Group("/exhibitions")
			{
				exhibitions.GET("", h.Exhibition.List)
				exhibitions.POST("", h.Exhibition.Create)
				exhibitions.GET("/:id", h.Exhibition.Get)
				exhibitions.PUT("/:id", h.Exhibition.Update)
				exhibitions.DELETE("/:id", h.Exhibition.Delete)
				exhibitions.GET("/:id/qrcode.png", h.Exhibition.QRCode)
				exhibitions.GET("/:id/logs", h.Exhibition.Logs)
				exhibitions.POST("/:id/logs", h.Exhibition.AddLog)
				exhibitions.PUT("/:id/logs/:log_id", h.Exhibition.UpdateLog)
				exhibitions.DELETE("/:id/logs/:log_id", h.Exhibition.DeleteLog)
			}

			// company settings
			authorized.GET("/settings", h.Settings.Get)
			authorized.PUT("/settings", middleware.RequireRole(entity.RoleAdmin), h.Settings.Update)

			// uploads
			authorized.POST("/assets", h.Asset.Upload)
			authorized.DELETE("/assets", h.Asset.Delete)
		}
	}
}
