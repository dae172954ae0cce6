package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go_admin_pro/internal/config"
	"go_admin_pro/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"               // postgresドライバ
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewGormLogger はアプリの slog ハンドラに GORM のログを流すロガーを返します。
func NewGormLogger(appLogger *slog.Logger) gormlogger.Interface {
	// APP_ENV=dev のときは SQL もすべて出す
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)
	return slogGormLogger.LogMode(gormLogLevel)
}

// NewDB は PostgreSQL に接続し、コネクションプールを設定した *gorm.DB を返します。
func NewDB(cfg config.DatabaseConfig, appLogger *slog.Logger) (*gorm.DB, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("repository.NewDB: %w: database url is empty", model.ErrStorage)
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: NewGormLogger(appLogger),
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, fmt.Errorf("repository.NewDB: %w: %w", model.ErrStorage, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, fmt.Errorf("repository.NewDB: %w: %w", model.ErrStorage, err)
	}

	// Pingで接続確認
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, fmt.Errorf("repository.NewDB: %w: %w", model.ErrStorage, err)
	}

	// コネクションプール (0 以下の値は既定値で置き換える)
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = config.DefaultMaxOpenConns
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = config.DefaultMaxIdleConns
	}
	lifetime := cfg.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = config.DefaultConnMaxLifetime
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)

	appLogger.Info("Database connection established with GORM",
		slog.Int("max_open_conns", maxOpen),
		slog.Int("max_idle_conns", maxIdle),
	)

	return db, nil
}

// Migrate は5つのテーブルを作成/更新します。
// 外部キーの向き (tenants -> credentials, clients -> addresses/vehicles) の順で並べること。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Tenant{},
		&model.Credential{},
		&model.Client{},
		&model.Address{},
		&model.Vehicle{},
	); err != nil {
		return fmt.Errorf("repository.Migrate: %w: %w", model.ErrStorage, err)
	}
	return nil
}

// isUniqueViolation は一意制約違反かどうかを判定します。
// postgres (23505)、TranslateError 有効時の gorm.ErrDuplicatedKey、sqlite のメッセージに対応。
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// storageError はドライバのエラーを ErrStorage でラップします。
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, model.ErrStorage, err)
}
