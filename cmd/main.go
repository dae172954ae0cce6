// cmd/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"go_admin_pro/internal/config"
	"go_admin_pro/internal/handlers"
	"go_admin_pro/internal/middleware"
	"go_admin_pro/internal/repository"
	"go_admin_pro/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application terminated", slog.Any("error", err))
		os.Exit(1)
	}
	log.Println("Server exiting")
}

// run はサーバーを起動し、停止シグナルか致命的なエラーまで待ちます。
// 途中で失敗しても defer した後始末 (DB のクローズ) は必ず実行される。
func run() error {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	configPath := os.Getenv("APP_CONFIG_PATH")
	if configPath == "" {
		configPath = "../configs"
	}
	if err := config.LoadConfig(configPath); err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	cfg := &config.Cfg

	logger := newLogger(cfg.Log, tempLogger)
	log.Println("Log Config Loaded...")

	// Configファイルの読み込み完了後、アプリケーション全体のデフォルトロガーを設定
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", cfg.App.Name), slog.String("version", config.AppVersion))

	// 1. Database (GORM)
	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting underlying sql.DB: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("Database migrated")
	}

	// 2. Dependency Injection
	tokenService, err := service.NewTokenService(cfg.JWT)
	if err != nil {
		return fmt.Errorf("initializing token service: %w", err)
	}
	mailer, err := service.NewMailer(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("initializing mailer: %w", err)
	}
	hasher := service.NewBcryptHasher(bcrypt.DefaultCost)

	tenantRepo := repository.NewGormTenantRepository()
	credentialRepo := repository.NewGormCredentialRepository()
	clientRepo := repository.NewGormClientRepository()
	addressRepo := repository.NewGormAddressRepository()
	vehicleRepo := repository.NewGormVehicleRepository()

	authService := service.NewAuthService(db, tenantRepo, credentialRepo, hasher, tokenService, mailer, cfg.App.Name)
	clientService := service.NewClientService(db, clientRepo, addressRepo, vehicleRepo)
	clientQueryService := service.NewClientQueryService(db, clientRepo)

	deps := handlers.RouterDeps{
		Logger:   logger,
		DB:       db,
		Auth:     handlers.NewAuthHandler(authService),
		Clients:  handlers.NewClientHandler(clientService, clientQueryService),
		Verifier: tokenService,
		CORS:     cfg.CORS,
	}

	// 3. Metrics
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		httpMetrics, err := middleware.NewHTTPMetrics(reg, strings.ReplaceAll(cfg.App.Name, "-", "_"))
		if err != nil {
			return fmt.Errorf("registering HTTP metrics: %w", err)
		}
		deps.Metrics = httpMetrics
		deps.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
		deps.MetricsPath = cfg.Metrics.Path
	}

	// 4. Router
	r := handlers.NewRouter(deps)

	// 5. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Listen の失敗はチャネルで受け取り、ゴルーチンの中では終了しない
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listening on %s: %w", cfg.Server.Port, err)
		}
		close(serverErr)
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case <-quit:
	}
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// newLogger は log.level / log.format と APP_ENV からハンドラーを選びます。
func newLogger(cfg config.LogConfig, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo) // 不明な場合はInfo
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" || strings.ToLower(cfg.Format) == "text" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
