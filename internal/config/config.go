package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env string

	APIBaseURL string
	APITimeout time.Duration

	PortalBaseURL string
	MPAccessToken string
}

func Load() *Config {
	// .env é opcional; em produção tudo vem do ambiente.
	_ = godotenv.Load()

	return &Config{
		Env:           getEnv("APP_ENV", "development"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080/api"),
		APITimeout:    time.Duration(getEnvInt("API_TIMEOUT_SECONDS", 15)) * time.Second,
		PortalBaseURL: getEnv("PORTAL_BASE_URL", "http://localhost:3000"),
		MPAccessToken: getEnv("MP_ACCESS_TOKEN", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
