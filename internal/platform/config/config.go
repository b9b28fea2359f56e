package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string

	DatabaseURL    string
	DatabaseName   string
	DBProbeTimeout time.Duration

	LeetCodeGraphQLURL string
	LeetCodeTimeout    time.Duration

	MetricsEnabled bool
}

var AppConfig *Config

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:            getEnv("PORT", getEnv("API_PORT", "8000")),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DatabaseName:       getEnv("DATABASE_NAME", ""),
		DBProbeTimeout:     time.Duration(getEnvAsInt("DB_PROBE_TIMEOUT_SECONDS", 5)) * time.Second,
		LeetCodeGraphQLURL: getEnv("LEETCODE_GRAPHQL_URL", "https://leetcode.com/graphql"),
		LeetCodeTimeout:    time.Duration(getEnvAsInt("LEETCODE_TIMEOUT_SECONDS", 12)) * time.Second,
		MetricsEnabled:     getEnvAsBool("METRICS_ENABLED", true),
	}

	// A zero or negative timeout would mean "wait forever" for the upstream call.
	if AppConfig.LeetCodeTimeout <= 0 {
		log.Printf("WARN: LEETCODE_TIMEOUT_SECONDS must be positive, using 12")
		AppConfig.LeetCodeTimeout = 12 * time.Second
	}
	if AppConfig.DBProbeTimeout <= 0 {
		AppConfig.DBProbeTimeout = 5 * time.Second
	}

	return AppConfig
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
