// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package config

import "time"

// Config holds all application configuration loaded from environment
// variables via github.com/caarlos0/env struct tags.
type Config struct {
	// Server configuration
	MetricsPort int    `env:"METRICS_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"ChallengeEngine"`

	// Backend API configuration (REQUIRED)
	APIBaseURL    string        `env:"API_BASE_URL,required"`
	APIToken      string        `env:"API_TOKEN"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	APIMaxRetries uint64        `env:"API_MAX_RETRIES" envDefault:"3"`

	// Session used by the refresh loop. A pre-issued token wins over
	// credential login.
	SessionEmail    string `env:"SESSION_EMAIL"`
	SessionPassword string `env:"SESSION_PASSWORD"`

	// Redis configuration
	RedisHost       string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort       string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisMaxRetries uint64 `env:"REDIS_MAX_RETRIES" envDefault:"5"`

	// Catalog configuration
	CatalogConfigPath string `env:"CATALOG_CONFIG_PATH" envDefault:"config/catalog.yaml"`
}

// RedisAddr returns the host:port pair for the Redis client.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}
