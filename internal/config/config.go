package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	DBDriver    string
	DatabaseDSN string
	ResetDB     bool
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	SwaggerHost string
	CORSOrigins []string

	StripeSecretKey    string
	CheckoutSuccessURL string
	CheckoutCancelURL  string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	dsn := getEnv("DATABASE_DSN", getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/meatmarket?charset=utf8mb4&parseTime=True&loc=Local"))

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "3001"),
		DBDriver:    getEnv("DB_DRIVER", "mysql"),
		DatabaseDSN: dsn,
		ResetDB:     os.Getenv("RESET_DB") == "true",
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		TokenTTL:    time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		BcryptCost:  getEnvInt("BCRYPT_COST", 12),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:3000"}),

		StripeSecretKey:    os.Getenv("STRIPE_SECRET_KEY"),
		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/success"),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/checkout?error=payment_canceled"),
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

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
