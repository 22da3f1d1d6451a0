package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port        string
	CORSOrigins string

	// Storage driver: memory | redis | postgres
	StorageDriver string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Case generation (chat-completions API)
	GLMAPIKey string
	GLMAPIURL string
	GLMModel  string
	AITimeout time.Duration

	// Identity: optional platform JWT, plus a dev fallback user for local play
	PlatformJWTSecret string
	DevUser           string

	// Admin: plaintext token or bcrypt hash of it (hash wins when both set)
	AdminToken     string
	AdminTokenHash string

	// Seed the demo case when no case exists for today
	SeedDemoCase bool
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		StorageDriver: getEnv("STORAGE_DRIVER", "memory"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       parseInt(getEnv("REDIS_DB", "0")),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "reddit_jury"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		GLMAPIKey: getEnv("GLM_API_KEY", ""),
		GLMAPIURL: getEnv("GLM_API_URL", "https://api.z.ai/api/paas/v4/chat/completions"),
		GLMModel:  getEnv("GLM_MODEL", "glm-5"),
		AITimeout: parseDuration(getEnv("AI_TIMEOUT", "60s")),

		PlatformJWTSecret: getEnv("PLATFORM_JWT_SECRET", ""),
		DevUser:           getEnv("DEV_USER", ""),

		AdminToken:     getEnv("ADMIN_TOKEN", ""),
		AdminTokenHash: getEnv("ADMIN_TOKEN_HASH", ""),

		SeedDemoCase: getEnv("SEED_DEMO_CASE", "false") == "true",
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 60 * time.Second
	}
	return d
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
