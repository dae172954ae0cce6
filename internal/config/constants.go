// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "admin-pro"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultMailDriver      = "log"
	DefaultMetricsPath     = "/metrics"
	DefaultMaxOpenConns    = 25
	DefaultMaxIdleConns    = 10
	DefaultConnMaxLifetime = time.Hour

	// セッショントークンの有効期間 (発行から8時間)
	DefaultAccessTokenTTL = 8 * time.Hour
)
