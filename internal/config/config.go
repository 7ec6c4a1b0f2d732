package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultRecipient is the operator mailbox form notifications go to unless
// CONTACT_RECIPIENT overrides it.
const DefaultRecipient = "nexivatech@gmail.com"

type Config struct {
	Environment string
	Port        string

	// Outbound mail relay
	SMTPHost    string
	SMTPPort    int
	EmailUser   string
	EmailPass   string
	MailFrom    string
	Recipient   string
	SendTimeout time.Duration

	// Upload staging
	UploadDir string

	// HTTP
	AllowedOrigins []string

	// Optional Redis-backed rate limiting; disabled when RedisURL is empty.
	RedisURL           string
	RateLimitPerMinute int
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "5000"),

		SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    getEnvAsInt("SMTP_PORT", 587),
		EmailUser:   getEnv("EMAIL_USER", ""),
		EmailPass:   getEnv("EMAIL_PASS", ""),
		Recipient:   getEnv("CONTACT_RECIPIENT", DefaultRecipient),
		SendTimeout: time.Duration(getEnvAsInt("SEND_TIMEOUT_SECONDS", 30)) * time.Second,

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")),

		RedisURL:           getEnv("REDIS_URL", ""),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	// The relay identity defaults to the account the relay authenticates as.
	cfg.MailFrom = getEnv("MAIL_FROM", cfg.EmailUser)

	return cfg
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
