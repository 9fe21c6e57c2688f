package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "BK"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// envOverrides maps environment variables onto config keys
var envOverrides = map[string]string{
	"BK_TIMEZONE":                      "timezone",
	"BK_SERVER_HOST":                   "server.host",
	"BK_SERVER_PORT":                   "server.port",
	"BK_SERVER_MODE":                   "server.mode",
	"BK_DB_DRIVER":                     "database.driver",
	"BK_DB_PATH":                       "database.path",
	"BK_DB_HOST":                       "database.host",
	"BK_DB_PORT":                       "database.port",
	"BK_DB_USERNAME":                   "database.username",
	"BK_DB_PASSWORD":                   "database.password",
	"BK_DB_NAME":                       "database.database",
	"BK_DB_SSL_MODE":                   "database.sslMode",
	"BK_DB_LOG_LEVEL":                  "database.logLevel",
	"BK_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
	"BK_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
	"BK_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
	"BK_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
	"BK_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
	"BK_DB_RETRY_ATTEMPTS":             "database.retryAttempts",
	"BK_DB_RETRY_DELAY_SECONDS":        "database.retryDelay",
	"BK_LOGGER_LEVEL":                  "logger.level",
	"BK_LOGGER_FORMAT":                 "logger.format",
	"BK_AUTH_JWT_SECRET":               "auth.jwtSecret",
	"BK_AUTH_TOKEN_TTL_MINUTES":        "auth.tokenTTL",
	"BK_AUTH_BCRYPT_COST":              "auth.bcryptCost",
}

// durationKeys hold whole numbers that processDurations scales
var durationKeys = map[string]bool{
	"database.connMaxLifetime": true,
	"database.connMaxIdleTime": true,
	"database.queryTimeout":    true,
	"database.retryDelay":      true,
	"auth.tokenTTL":            true,
}

// LoadConfig loads configuration for the environment named by BK_ENV
func LoadConfig() (*Config, error) {
	// Missing .env files are normal outside local development
	_ = loadDotEnvFile(DotEnvPaths)

	return LoadConfigFrom(getEnvironment(), ConfigPaths)
}

// LoadConfigFrom reads <env>.yaml from the first matching path and applies overrides
func LoadConfigFrom(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in paths
func loadDotEnvFile(paths []string) error {
	var lastError error

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("timezone", "UTC")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "bookkeeper.db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("auth.tokenTTL", 60) // minutes
	v.SetDefault("auth.bcryptCost", 10)
}

// getEnvironment determines the environment to use based on BK_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("BK_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	for envKey, configKey := range envOverrides {
		value, ok := os.LookupEnv(envKey)
		if !ok || value == "" {
			continue
		}
		if durationKeys[configKey] {
			if n, err := strconv.Atoi(value); err == nil {
				v.Set(configKey, n)
			}
			continue
		}
		v.Set(configKey, value)
	}
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// Seconds
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	// Minutes
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Minute
}
