package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/carxpresspanabo/carxpress-rental/internal/booking"
	"github.com/carxpresspanabo/carxpress-rental/internal/customers"
	"github.com/carxpresspanabo/carxpress-rental/internal/fleet"
	"github.com/carxpresspanabo/carxpress-rental/internal/leads"
	"github.com/carxpresspanabo/carxpress-rental/internal/money"
	"github.com/carxpresspanabo/carxpress-rental/internal/overview"
	"github.com/carxpresspanabo/carxpress-rental/internal/settings"
	"github.com/carxpresspanabo/carxpress-rental/internal/store"
	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
	"github.com/carxpresspanabo/carxpress-rental/pkg/config"
	"github.com/carxpresspanabo/carxpress-rental/pkg/logger"
	"github.com/carxpresspanabo/carxpress-rental/pkg/middleware"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load("rental")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Open the snapshot store
	fileStore, err := store.NewFileStore(cfg.Store.Path)
	if err != nil {
		logger.Fatal("failed to open snapshot file", zap.String("path", cfg.Store.Path), zap.Error(err))
	}

	var persister store.Persister = fileStore
	if cfg.Firebase.Enabled {
		mirror, err := store.NewFirestoreMirror(ctx, fileStore, cfg.Firebase)
		if err != nil {
			logger.Fatal("failed to connect Firestore mirror", zap.Error(err))
		}
		defer mirror.Close()
		persister = mirror
		logger.Info("Firestore mirror enabled",
			zap.String("project", cfg.Firebase.ProjectID),
			zap.String("document", cfg.Firebase.Document))
	}

	repo := store.Open(ctx, persister, store.Settings{
		DriverRatePerDay: money.Cents(cfg.Rental.DriverRatePerDay * 100),
		CompanyName:      cfg.Rental.CompanyName,
		CompanyAddress:   cfg.Rental.CompanyAddress,
		CompanyPhone:     cfg.Rental.CompanyPhone,
	})
	logger.Info("snapshot loaded",
		zap.Int("vehicles", len(repo.Vehicles())),
		zap.Int("customers", len(repo.Customers())),
		zap.Int("bookings", len(repo.Bookings())))

	// Create services and handlers
	bookingService := booking.NewService(repo)
	bookingHandler := booking.NewHandler(bookingService)

	fleetHandler := fleet.NewHandler(fleet.NewService(repo))
	customerHandler := customers.NewHandler(customers.NewService(repo))
	leadsHandler := leads.NewHandler(leads.NewService(repo))
	overviewHandler := overview.NewHandler(overview.NewService(repo, bookingService))
	settingsHandler := settings.NewHandler(settings.NewService(repo))

	// Set up Gin router
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics(cfg.Server.ServiceName))
	router.Use(middleware.SecurityHeaders())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	// Health check and metrics
	router.GET("/healthz", common.HealthCheck(cfg.Server.ServiceName, version))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	{
		fleetHandler.RegisterRoutes(api)
		customerHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
		leadsHandler.RegisterRoutes(api)
		overviewHandler.RegisterRoutes(api)
		settingsHandler.RegisterRoutes(api)
	}

	// Start server
	addr := ":" + cfg.Server.Port
	logger.Info("rental service starting",
		zap.String("port", cfg.Server.Port),
		zap.String("environment", cfg.Server.Environment),
		zap.Duration("read_timeout", time.Duration(cfg.Server.ReadTimeout)*time.Second))
	if err := router.Run(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
