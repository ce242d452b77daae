package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	DBDriver        string
	DatabaseDSN     string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
	OpenAIKey       string
	OpenAIModel     string
	OpenAIBaseURL   string
	RateLimitPerMin int
	SwaggerHost     string
	ResetDB         bool
	Location        *time.Location
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: load .env: %v", err)
	}

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8000"),
		DBDriver:        getEnv("DB_DRIVER", "mysql"),
		DatabaseDSN:     getEnv("DATABASE_DSN", getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/studyhub?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true")),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       getEnv("JWT_SECRET", "change-me"),
		AccessTTL:       getEnvDuration("ACCESS_TTL", 7*24*time.Hour),
		RefreshTTL:      getEnvDuration("REFRESH_TTL", 30*24*time.Hour),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4.1-nano"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MIN", 300),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
		ResetDB:         os.Getenv("RESET_DB") == "true",
		Location:        getEnvLocation("TIMEZONE", time.Local),
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
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("config: invalid duration for %s: %v, using %s", key, err, def)
			return def
		}
		return d
	}
	return def
}

func getEnvLocation(key string, def *time.Location) *time.Location {
	if v := os.Getenv(key); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			log.Printf("config: invalid timezone %q: %v, using %s", v, err, def)
			return def
		}
		return loc
	}
	return def
}
