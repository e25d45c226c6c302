package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, optionally preloading a
// dotenv file. A missing .env file is not an error; the process environment
// alone is enough.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	var err error
	if len(envFilePath) > 0 && envFilePath[0] != "" {
		err = godotenv.Load(envFilePath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		logger.Warn("No .env file found, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"persistence_driver", cfg.Persistence.Driver,
		"mongo_uri", maskValue(cfg.Persistence.Mongo.URI),
		"whitelist_base_url", cfg.Whitelist.BaseURL,
		"whitelist_http_timeout", cfg.Whitelist.HTTPTimeout,
		"promo_policy", cfg.Promo.Policy,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
