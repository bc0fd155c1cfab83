package config

import (
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	AutoMigrate        bool
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint         string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UseSSL           bool
	PresignExpirySec int
}

// PresignExpiry returns the lifetime of attachment URLs.
func (c MinIOConfig) PresignExpiry() time.Duration {
	return time.Duration(c.PresignExpirySec) * time.Second
}

// SecurityConfig holds bearer token and cookie settings.
type SecurityConfig struct {
	JWTSecret   string
	EnableHTTPS bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port        string
	ContextPath string
	LogLevel    string
	Timezone    string
	Database    DatabaseConfig
	MinIO       MinIOConfig
	Security    SecurityConfig
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	v := newViper()

	return &AppConfig{
		Port:        v.GetString("PORT"),
		ContextPath: v.GetString("CONTEXT_PATH"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Timezone:    v.GetString("TIMEZONE"),
		Database: DatabaseConfig{
			Host:               v.GetString("DB_HOST"),
			Port:               v.GetString("DB_PORT"),
			User:               v.GetString("DB_USER"),
			Password:           v.GetString("DB_PASSWORD"),
			Name:               v.GetString("DB_NAME"),
			SSLMode:            v.GetString("DB_SSLMODE"),
			MaxOpenConns:       v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:       v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetimeSec: v.GetInt("DB_CONN_MAX_LIFETIME_SEC"),
			AutoMigrate:        v.GetBool("DB_AUTO_MIGRATE"),
		},
		MinIO: MinIOConfig{
			Endpoint:         v.GetString("MINIO_ENDPOINT"),
			AccessKey:        v.GetString("MINIO_ACCESS_KEY"),
			SecretKey:        v.GetString("MINIO_SECRET_KEY"),
			Bucket:           v.GetString("MINIO_BUCKET"),
			UseSSL:           v.GetBool("MINIO_USE_SSL"),
			PresignExpirySec: v.GetInt("MINIO_PRESIGN_EXPIRY_SEC"),
		},
		Security: SecurityConfig{
			JWTSecret:   v.GetString("SECURITY_JWT_SECRET"),
			EnableHTTPS: v.GetBool("SECURITY_ENABLE_HTTPS"),
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	// defaults only for non-sensitive values
	v.SetDefault("PORT", "8080")
	v.SetDefault("CONTEXT_PATH", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TIMEZONE", "UTC")

	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_SEC", 300)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("MINIO_PRESIGN_EXPIRY_SEC", 3600)

	v.SetDefault("SECURITY_ENABLE_HTTPS", false)

	return v
}
