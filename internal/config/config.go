// Package config loads process settings from the environment once at startup.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvProduction = "production"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds everything main needs to wire the application.
type Config struct {
	AppPort string
	AppEnv  string

	DBDriver          string
	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBAutoMigrate     bool

	RabbitMQURL   string
	RabbitMQQueue string

	LogLevel string
}

// IsProduction reports whether the store connection must be encrypted.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, EnvProduction)
}

// Load reads configuration from environment variables, falling back to defaults.
func Load() Config {
	return load(viper.New())
}

func load(v *viper.Viper) Config {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_URL", "host=127.0.0.1 user=postgres password=postgres dbname=gudang port=5432 sslmode=disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "item_events")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	// PORT is what most hosting platforms inject.
	port := v.GetString("APP_PORT")
	if p := v.GetString("PORT"); p != "" {
		port = p
	}

	return Config{
		AppPort:           normalizePort(port),
		AppEnv:            v.GetString("APP_ENV"),
		DBDriver:          strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		DBMaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		DBAutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:     v.GetString("RABBITMQ_QUEUE"),
		LogLevel:          v.GetString("LOG_LEVEL"),
	}
}

func normalizePort(port string) string {
	if port == "" || strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
