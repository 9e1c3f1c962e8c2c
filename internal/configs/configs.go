package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"

	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

type Config struct {
	AppURL                 string
	StoreDriver            string
	DatabaseDSN            string
	MongoURI               string
	MongoDatabase          string
	RateLimit              int
	RateLimitBackend       string
	RedisAddr              string
	RedisRateLimitPrefix   string
	JWTSecret              string
	JWTTTLHours            int
	AssignRetryLimit       int
	ShutdownTimeoutSeconds int
	LogLevel               string
	LogFile                string
	CORSAllowOrigins       []string
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "5000")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	var errs []error
	intVar := func(key string, defaultVal int) int {
		v, err := getEnvAsInt(key, defaultVal)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		StoreDriver:            strings.ToLower(getEnv("STORE_DRIVER", StoreSQLite)),
		DatabaseDSN:            getEnv("DATABASE_DSN", "relief.db"),
		MongoURI:               getEnv("MONGO_URI", ""),
		MongoDatabase:          getEnv("MONGO_DB_NAME", "relief"),
		RateLimit:              intVar("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBackend:       strings.ToLower(getEnv("RATE_LIMIT_BACKEND", RateLimitMemory)),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisRateLimitPrefix:   getEnv("REDIS_RATE_LIMIT_PREFIX", "relief:ratelimit"),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		JWTTTLHours:            intVar("JWT_TTL_HOURS", 24),
		AssignRetryLimit:       intVar("ASSIGN_RETRY_LIMIT", 5),
		ShutdownTimeoutSeconds: intVar("SHUTDOWN_TIMEOUT_SECONDS", 20),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFile:                getEnv("LOG_FILE", ""),
		CORSAllowOrigins:       splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.StoreDriver {
	case StoreSQLite:
		if cfg.DatabaseDSN == "" {
			return errors.New("DATABASE_DSN must not be empty")
		}
	case StoreMongo:
		if cfg.MongoURI == "" {
			return errors.New("MONGO_URI must be set when STORE_DRIVER=mongo")
		}
		if cfg.MongoDatabase == "" {
			return errors.New("MONGO_DB_NAME must not be empty")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreSQLite, StoreMongo, cfg.StoreDriver)
	}

	switch cfg.RateLimitBackend {
	case RateLimitMemory, RateLimitRedis:
	default:
		return fmt.Errorf("RATE_LIMIT_BACKEND must be %q or %q, got %q", RateLimitMemory, RateLimitRedis, cfg.RateLimitBackend)
	}

	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if cfg.JWTTTLHours <= 0 {
		return errors.New("JWT_TTL_HOURS must be greater than 0")
	}
	if cfg.AssignRetryLimit <= 0 {
		return errors.New("ASSIGN_RETRY_LIMIT must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return defaultVal, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
