package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"invoicing-dashboard/internal/blob"
	"invoicing-dashboard/internal/config"
	"invoicing-dashboard/internal/database"
	"invoicing-dashboard/internal/handlers"
	custommw "invoicing-dashboard/internal/middleware"
	"invoicing-dashboard/internal/repositories"
	"invoicing-dashboard/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)

	// Shared infrastructure
	metrics := services.NewPrometheusMetrics()
	views := services.NewDashboardViewCache(&cfg.Cache)
	views.StartJanitor(ctx, cfg.Cache.CleanupInterval)

	store, err := blob.NewLocalStore(cfg.Upload.Dir, cfg.Upload.URLPrefix)
	if err != nil {
		log.Fatal("Failed to initialize upload store:", err)
	}

	// Services
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(&cfg.Security)
	authService := services.NewAuthService(userRepo, passwordService, tokenService, metrics, slog.Default())
	customerService := services.NewCustomerService(customerRepo, views, metrics, slog.Default())
	invoiceService := services.NewInvoiceService(invoiceRepo, customerRepo, views, metrics, slog.Default())
	dashboardService := services.NewDashboardService(invoiceRepo, customerRepo, views, metrics, slog.Default())
	demoDataService := services.NewDemoDataService(customerRepo, invoiceRepo, views, slog.Default())

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	uploadHandler := handlers.NewUploadHandler(store, &cfg.Upload, metrics)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.Static(strings.TrimSuffix(cfg.Upload.URLPrefix, "/"), cfg.Upload.Dir)

	api := e.Group("/api/v1")

	api.POST("/auth/signup", authHandler.SignUp)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("", custommw.RequireAuth(tokenService))
	protected.GET("/auth/me", authHandler.Me)

	protected.GET("/customers", customerHandler.List)
	protected.POST("/customers", customerHandler.Create)
	protected.GET("/customers/:id", customerHandler.Get)
	protected.PUT("/customers/:id", customerHandler.Update)
	protected.DELETE("/customers/:id", customerHandler.Delete)

	protected.GET("/invoices", invoiceHandler.List)
	protected.POST("/invoices", invoiceHandler.Create)
	protected.GET("/invoices/:id", invoiceHandler.Get)
	protected.PUT("/invoices/:id", invoiceHandler.Update)
	protected.DELETE("/invoices/:id", invoiceHandler.Delete)

	protected.GET("/dashboard/revenue", dashboardHandler.Revenue)
	protected.GET("/dashboard/cards", dashboardHandler.Cards)
	protected.GET("/dashboard/latest-invoices", invoiceHandler.Latest)

	protected.POST("/uploads/avatar", uploadHandler.UploadAvatar)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(demoDataService)
		protected.POST("/dev/seed", devHandler.SeedDemoData)
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

// setupLogger configures the process-wide slog logger. Production logs JSON,
// everything else gets the friendlier text handler.
func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}
