package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	CORS   CORSConfig
	Queue  QueueConfig
	Email  EmailConfig
	Plan   PlanConfig
}

// PlanConfig holds limits applied to incoming trip plan documents.
type PlanConfig struct {
	MaxDocumentSizeKB int64 `mapstructure:"max_document_size_kb"`
}

// MaxDocumentBytes returns the document size limit in bytes.
func (p *PlanConfig) MaxDocumentBytes() int64 {
	return p.MaxDocumentSizeKB * 1024
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// QueueConfig holds reparse queue worker settings.
type QueueConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	MaxRetries       int `mapstructure:"max_retries"`
	Concurrency      int `mapstructure:"concurrency"`
}

// PollInterval returns the poll interval as a duration.
func (q *QueueConfig) PollInterval() time.Duration {
	return time.Duration(q.PollIntervalSecs) * time.Second
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`

	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// Load reads configuration from environment variables with the WANDERPLAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("WANDERPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "20s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "wanderplan")
	v.SetDefault("db.password", "wanderplan_secret")
	v.SetDefault("db.name", "wanderplan_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)
	v.SetDefault("db.conn_max_lifetime", "30m")

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "24h")
	v.SetDefault("jwt.issuer", "wanderplan")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "wanderplan-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000,http://127.0.0.1:3000")

	// Queue defaults
	v.SetDefault("queue.poll_interval_secs", 10)
	v.SetDefault("queue.max_retries", 5)
	v.SetDefault("queue.concurrency", 4)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@wanderplan.app")
	v.SetDefault("email.from_name", "Wanderplan")
	v.SetDefault("email.frontend_url", "http://localhost:5173")

	// Plan defaults
	v.SetDefault("plan.max_document_size_kb", 512)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "WANDERPLAN_SERVER_PORT",
		"server.read_timeout":       "WANDERPLAN_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "WANDERPLAN_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout":   "WANDERPLAN_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":        "WANDERPLAN_SERVER_ENVIRONMENT",
		"db.host":                   "WANDERPLAN_DB_HOST",
		"db.port":                   "WANDERPLAN_DB_PORT",
		"db.user":                   "WANDERPLAN_DB_USER",
		"db.password":               "WANDERPLAN_DB_PASSWORD",
		"db.name":                   "WANDERPLAN_DB_NAME",
		"db.sslmode":                "WANDERPLAN_DB_SSLMODE",
		"db.max_open":               "WANDERPLAN_DB_MAX_OPEN",
		"db.max_idle":               "WANDERPLAN_DB_MAX_IDLE",
		"db.conn_max_lifetime":      "WANDERPLAN_DB_CONN_MAX_LIFETIME",
		"jwt.secret":                "WANDERPLAN_JWT_SECRET",
		"jwt.access_expiry":         "WANDERPLAN_JWT_ACCESS_EXPIRY",
		"jwt.issuer":                "WANDERPLAN_JWT_ISSUER",
		"s3.region":                 "WANDERPLAN_S3_REGION",
		"s3.bucket":                 "WANDERPLAN_S3_BUCKET",
		"s3.endpoint":               "WANDERPLAN_S3_ENDPOINT",
		"s3.access_key":             "WANDERPLAN_S3_ACCESS_KEY",
		"s3.secret_key":             "WANDERPLAN_S3_SECRET_KEY",
		"s3.presign_expiry":         "WANDERPLAN_S3_PRESIGN_EXPIRY",
		"cors.allowed_origins":      "WANDERPLAN_CORS_ALLOWED_ORIGINS",
		"queue.poll_interval_secs":  "WANDERPLAN_QUEUE_POLL_INTERVAL_SECS",
		"queue.max_retries":         "WANDERPLAN_QUEUE_MAX_RETRIES",
		"queue.concurrency":         "WANDERPLAN_QUEUE_CONCURRENCY",
		"email.provider":            "WANDERPLAN_EMAIL_PROVIDER",
		"email.region":              "WANDERPLAN_EMAIL_REGION",
		"email.from_address":        "WANDERPLAN_EMAIL_FROM_ADDRESS",
		"email.from_name":           "WANDERPLAN_EMAIL_FROM_NAME",
		"email.frontend_url":        "WANDERPLAN_EMAIL_FRONTEND_URL",
		"plan.max_document_size_kb": "WANDERPLAN_PLAN_MAX_DOCUMENT_SIZE_KB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if WANDERPLAN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("WANDERPLAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),

		ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitOrigins(v.GetString("cors.allowed_origins")),
	}
	cfg.Queue = QueueConfig{
		PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
		MaxRetries:       v.GetInt("queue.max_retries"),
		Concurrency:      v.GetInt("queue.concurrency"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}
	cfg.Plan = PlanConfig{
		MaxDocumentSizeKB: v.GetInt64("plan.max_document_size_kb"),
	}

	if cfg.Queue.Concurrency <= 0 {
		return nil, fmt.Errorf("queue.concurrency must be positive, got %d", cfg.Queue.Concurrency)
	}
	if cfg.Queue.PollIntervalSecs <= 0 {
		return nil, fmt.Errorf("queue.poll_interval_secs must be positive, got %d", cfg.Queue.PollIntervalSecs)
	}

	return cfg, nil
}

// splitOrigins parses a comma-separated list of CORS origins.
func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
