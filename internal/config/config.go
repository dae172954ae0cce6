// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

// JWTConfig はトークンの署名キーと有効期間です。TokenService に明示的に渡します。
type JWTConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	Issuer         string        `mapstructure:"issuer"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type MailConfig struct {
	Driver string `mapstructure:"driver"` // "log" または "ses"
	From   string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" または "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	App      AppConfig      `mapstructure:"app"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Mail     MailConfig     `mapstructure:"mail"`
	SES      SESConfig      `mapstructure:"ses"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

var Cfg Config

// ErrMissingSecretKey は署名キーが未設定の場合に返されます。
var ErrMissingSecretKey = errors.New("config: jwt.secret_key is required")

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.url", "")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.max_open_conns", DefaultMaxOpenConns)
	v.SetDefault("database.max_idle_conns", DefaultMaxIdleConns)
	v.SetDefault("database.conn_max_lifetime", DefaultConnMaxLifetime)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("app.name", AppName)
	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.access_token_ttl", DefaultAccessTokenTTL)
	v.SetDefault("jwt.issuer", AppName)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"})
	v.SetDefault("cors.exposed_headers", []string{"X-Request-Id"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("mail.driver", DefaultMailDriver)
	v.SetDefault("mail.from", "no-reply@adminpro.local")
	v.SetDefault("ses.region", "")
	v.SetDefault("ses.auth_type", "iam_role")
	v.SetDefault("ses.access_key_id", "")
	v.SetDefault("ses.secret_access_key", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", DefaultMetricsPath)
}

// Load は path 配下の config.yaml と環境変数から設定を読み込みます。
// グローバル変数には触れないので、テストからも使えます。
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// APP_JWT_SECRET_KEY のように接頭辞をつけた環境変数で上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// 旧バックエンドと同じ環境変数名もそのまま使えるようにする
	_ = v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("jwt.secret_key", "APP_JWT_SECRET_KEY", "JWT_SECRET")
	_ = v.BindEnv("jwt.access_token_ttl", "APP_JWT_ACCESS_TOKEN_TTL", "AUTH_TOKEN_TTL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return nil, err
	}

	// --- 値の補正 ---
	if cfg.JWT.AccessTokenTTL <= 0 {
		log.Printf("JWT access token TTL not set or invalid, using default '%s'", DefaultAccessTokenTTL)
		cfg.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.JWT.SecretKey == "" {
		return nil, ErrMissingSecretKey
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", cfg.Server.Port)
	log.Printf("Token TTL: %s", cfg.JWT.AccessTokenTTL)
	log.Printf("Mail Driver: %s", cfg.Mail.Driver)

	return &cfg, nil
}

// LoadConfig は Load の結果をパッケージ変数 Cfg に格納します (main から利用)。
func LoadConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Cfg = *cfg
	return nil
}
