package main

import (
	"log/slog"
	"os"

	"github.com/continental-snooker/snooker_booking_app/cmd/docs"
	"github.com/continental-snooker/snooker_booking_app/internal/core/services"
	"github.com/continental-snooker/snooker_booking_app/internal/handlers"
	"github.com/continental-snooker/snooker_booking_app/internal/middleware"
	"github.com/continental-snooker/snooker_booking_app/internal/platform/config"
	"github.com/continental-snooker/snooker_booking_app/internal/repositories/spreadsheet"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Continental Snooker Booking API
// @version 1.0
// @description Booking and ledger API for the Continental Snooker venue.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the form front-end)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/", handlers.GetHome)

	setupAPIV1Routes(r, cfg)

	setupSwaggerRoutes(r, cfg)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("ledger_file", cfg.LedgerFile),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func setupAPIV1Routes(r *gin.Engine, cfg *config.Config) {
	v1 := r.Group("/api/v1")

	addBookingAPI(v1, cfg)
	addTablesAPI(v1, cfg)
}

func addBookingAPI(v1 *gin.RouterGroup, cfg *config.Config) {
	bookingRepo := spreadsheet.NewBookingRepository(cfg.LedgerFile)
	bookingService := services.NewBookingService(bookingRepo, cfg.Rates)
	bookingHandler := handlers.NewBookingHandler(bookingService, cfg.CurrencySymbol)

	bookings := v1.Group("/bookings")
	{
		bookings.POST("/", bookingHandler.CreateBooking)
		bookings.GET("/", bookingHandler.ListBookings)
		bookings.GET("/stats", bookingHandler.GetStats)
		bookings.GET("/export", bookingHandler.ExportBookings)
	}
}

func addTablesAPI(v1 *gin.RouterGroup, cfg *config.Config) {
	tablesHandler := handlers.NewTablesHandler(cfg.Rates)

	tables := v1.Group("/tables")
	tables.GET("/", tablesHandler.ListTables)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
